package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus classifies the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // placed, awaiting a decision
	OrderStatusAccepted   OrderStatus = "Accepted"   // terminal
	OrderStatusRejected   OrderStatus = "Rejected"   // terminal
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusAccepted, OrderStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusAccepted || s == OrderStatusRejected
}

// CanTransition reports whether s may move to next. The only legal moves are
// Processing -> Accepted and Processing -> Rejected.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return s == OrderStatusProcessing && next.Terminal()
}

// Address is the shipping destination captured at checkout.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order is a placed purchase. Everything except Status is immutable after
// creation; Status only moves through OrderStatus.CanTransition.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Address   Address         `json:"address"`
	Timestamp time.Time       `json:"timestamp"`
	Status    OrderStatus     `json:"status"`
}
