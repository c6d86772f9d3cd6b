package models

import "github.com/shopspring/decimal"

// Product is a catalog item. Stock is informational only; the core does not
// decrement it on checkout.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
}
