package warehouseapi

import (
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/shopspring/decimal"
)

// WarehouseResponse is a listing as the warehouse API serves it.
type WarehouseResponse struct {
	ID            string          `json:"_id"`
	WarehouseName string          `json:"warehouseName"`
	OwnerName     string          `json:"ownerName"`
	Capacity      string          `json:"capacity"`
	Location      string          `json:"location"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
	Images        []string        `json:"images"`
	WalletAddress string          `json:"walletAddress"`
	IsBooked      bool            `json:"isBooked"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BookRequest binds the booking to the transfer that paid for it.
type BookRequest struct {
	TransactionHash string `json:"transactionHash"`
}

func (r WarehouseResponse) toDomain() domain.Warehouse {
	return domain.Warehouse{
		ID:                r.ID,
		Name:              r.WarehouseName,
		OwnerName:         r.OwnerName,
		Capacity:          r.Capacity,
		Location:          r.Location,
		Price:             r.Price,
		Description:       r.Description,
		Images:            r.Images,
		PaymentIdentifier: domain.PaymentIdentifier(r.WalletAddress),
		IsBooked:          r.IsBooked,
		CreatedAt:         r.CreatedAt,
	}
}
