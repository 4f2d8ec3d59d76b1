// Package store holds the storefront's order model. Its statuses are the
// internal side of the order bridge.
package store

import "time"

// Order is a customer purchase as the storefront sees it.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	Payment    PaymentKind `json:"payment"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusRefunded  OrderStatus = "REFUNDED"
	StatusDraft     OrderStatus = "DRAFT" // never leaves the storefront

	// StatusDefault is the status of a freshly created order.
	StatusDefault = StatusPending
)

// PaymentKind is how an order was paid.
type PaymentKind int

const (
	PaymentCard PaymentKind = iota + 1
	PaymentTransfer
	PaymentVoucher
)
