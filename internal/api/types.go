package api

import "time"

type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Warehouse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OwnerName         string    `json:"owner_name,omitempty"`
	Capacity          string    `json:"capacity,omitempty"`
	Location          string    `json:"location"`
	Price             string    `json:"price"`
	Description       string    `json:"description,omitempty"`
	Images            []string  `json:"images,omitempty"`
	PaymentIdentifier string    `json:"payment_identifier"`
	IsBooked          bool      `json:"is_booked"`
	CreatedAt         time.Time `json:"created_at,omitzero"`
}

type Receipt struct {
	WarehouseName string    `json:"warehouse_name"`
	Location      string    `json:"location"`
	Amount        string    `json:"amount"`
	Payee         string    `json:"payee"`
	TxHandle      string    `json:"tx_handle"`
	ExplorerURL   string    `json:"explorer_url,omitempty"`
	FinalizedAt   time.Time `json:"finalized_at"`
}

type Failure struct {
	Code             string `json:"code"`
	Reason           string `json:"reason"`
	FundsTransferred bool   `json:"funds_transferred"`
	RequiresSupport  bool   `json:"requires_support"`
}

// Booking is the terminal state of one booking attempt.
type Booking struct {
	AttemptID   string   `json:"attempt_id"`
	WarehouseID string   `json:"warehouse_id"`
	Stage       string   `json:"stage"`
	TxHandle    string   `json:"tx_handle,omitempty"`
	ExplorerURL string   `json:"explorer_url,omitempty"`
	Receipt     *Receipt `json:"receipt,omitempty"`
	Failure     *Failure `json:"failure,omitempty"`
}
