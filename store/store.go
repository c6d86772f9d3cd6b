// Package store implements the persistent key-value space backing the
// storefront: five independently keyed JSON channels plus a full-reset
// operation.
//
// The contract mirrors browser local storage: reads that find nothing (or
// fail to decode) leave the caller's default in place, and writes are
// best-effort — a failed durable write is logged and the in-memory view keeps
// the new value, so the session continues with a degraded store rather than
// an error.
package store

import "context"

// Channel keys. Each holds one JSON document (an array for the collections,
// a single object for the session slot).
const (
	KeyUsers       = "users"
	KeyProducts    = "products"
	KeyCart        = "cart"
	KeyOrders      = "orders"
	KeyCurrentUser = "current_user"
)

// Store is the durable key-value space scoped to one client profile.
type Store interface {
	// Get decodes the channel's JSON into dest and returns true. If the key
	// is absent or the payload does not decode, dest is left untouched and
	// Get returns false; it never surfaces an error to the caller.
	Get(ctx context.Context, key string, dest any) bool

	// Set serializes value as JSON and writes it to the channel. Durable
	// write failures are logged and swallowed; subsequent Gets still observe
	// the written value for the lifetime of the process.
	Set(ctx context.Context, key string, value any)

	// Remove deletes the channel. Same degradation contract as Set.
	Remove(ctx context.Context, key string)

	// Reset wipes every channel. This is the only deletion path for users.
	Reset(ctx context.Context) error
}
