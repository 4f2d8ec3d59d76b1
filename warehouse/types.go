// Package warehouse holds the fulfilment side of an order. Its states are
// the external side of the order bridge.
package warehouse

import "time"

// Shipment is the warehouse record of an order being fulfilled.
type Shipment struct {
	ID        uint      `json:"id"`
	OrderRef  string    `json:"order_ref"`
	State     State     `json:"state"`
	Carrier   Carrier   `json:"carrier"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State is the fulfilment state of a shipment.
type State int

const (
	StateOpen State = iota + 1
	StateReserved
	StatePicked
	StateDispatched
	StateVoided
	StateLost // written off by the warehouse only
)

// Carrier names the shipping company.
type Carrier string

const (
	CarrierPost    Carrier = "post"
	CarrierCourier Carrier = "courier"
	CarrierPickup  Carrier = "pickup"
)
