// Package domain holds the warehouse booking model: payment identifier normalization,
// price conversion and the booking flow state machine.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse is a storage listing as served by the warehouse API.
type Warehouse struct {
	ID                string
	Name              string
	OwnerName         string
	Capacity          string
	Location          string
	Price             decimal.Decimal
	Description       string
	Images            []string
	PaymentIdentifier PaymentIdentifier
	IsBooked          bool
	CreatedAt         time.Time
}

// Available reports whether a booking may be offered for the warehouse.
func (w *Warehouse) Available() bool {
	return !w.IsBooked
}

// Session is the caller's authenticated context, passed explicitly into finalization.
type Session struct {
	Token  string
	UserID string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
