// Package warehouse holds the fulfillment-side order model, the
// destination shape in the mapping examples and tests.
package warehouse

import (
	"time"
)

// Order is a fulfillment request derived from a storefront order.
type Order struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`       // "pending", "paid", "shipped", "cancelled"
	TotalAmount int64     `json:"total_amount"` // in cents
	Customer    Customer  `json:"customer"`
	Shipping    *Address  `json:"shipping,omitempty"`
	PlacedAt    time.Time `json:"placed_at"`
	Origin      string    `json:"origin,omitempty"`
}

// Customer is the snapshot of the buyer kept with a fulfillment order.
type Customer struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Active bool   `json:"active"`
}

// Address is a delivery address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}
