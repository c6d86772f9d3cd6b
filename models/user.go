// Package models defines the persisted storefront entities.
package models

// User is a registered account. FaceDescriptor is optional: accounts without
// one can only authenticate with email and password.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"passwordHash"`
	FaceDescriptor []float64 `json:"faceDescriptor,omitempty"`
	IsAdmin        bool      `json:"isAdmin"`
}

// HasBiometrics reports whether a non-empty descriptor is enrolled.
func (u *User) HasBiometrics() bool {
	return len(u.FaceDescriptor) > 0
}
