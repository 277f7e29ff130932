// Package store holds the storefront-side order model, the source shape
// in the mapping examples and tests.
package store

import (
	"time"
)

// Order represents a transaction made by a customer.
// Monetary amounts are int64 cents (lowest currency unit) to avoid
// floating-point errors.
type Order struct {
	ID         int64       `json:"id"`
	Reference  string      `json:"reference"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Customer   *Customer   `json:"customer"`
	Shipping   *Address    `json:"shipping,omitempty"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64    `json:"id"`
	FullName string   `json:"full_name"`
	Contact  *Contact `json:"contact,omitempty"`
	IsActive bool     `json:"is_active"`
}

// Contact carries the ways to reach a customer.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Address is a shipping destination.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
