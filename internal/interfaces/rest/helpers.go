package rest

import (
	"fmt"

	"github.com/DanielPopoola/agrivault-booking/internal/api"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

func ToAPIWarehouse(w domain.Warehouse) api.Warehouse {
	return api.Warehouse{
		ID:                w.ID,
		Name:              w.Name,
		OwnerName:         w.OwnerName,
		Capacity:          w.Capacity,
		Location:          w.Location,
		Price:             w.Price.String(),
		Description:       w.Description,
		Images:            w.Images,
		PaymentIdentifier: string(w.PaymentIdentifier),
		IsBooked:          w.IsBooked,
		CreatedAt:         w.CreatedAt,
	}
}

func ToAPIWarehouses(ws []domain.Warehouse) []api.Warehouse {
	out := make([]api.Warehouse, 0, len(ws))
	for _, w := range ws {
		out = append(out, ToAPIWarehouse(w))
	}
	return out
}

// ToAPIBooking renders a terminal flow. explorerTxURL is a format string with one %s
// for the transaction handle; empty disables explorer links.
func ToAPIBooking(flow domain.BookingFlow, explorerTxURL string) api.Booking {
	b := api.Booking{
		AttemptID:   flow.Attempt.ID,
		WarehouseID: flow.Attempt.WarehouseID,
		Stage:       string(flow.Stage),
	}

	if flow.Attempt.Handle != nil {
		b.TxHandle = string(*flow.Attempt.Handle)
		b.ExplorerURL = explorerLink(explorerTxURL, *flow.Attempt.Handle)
	}

	if r := flow.Receipt; r != nil {
		b.Receipt = &api.Receipt{
			WarehouseName: r.WarehouseName,
			Location:      r.Location,
			Amount:        r.Amount.String(),
			Payee:         r.Payee.String(),
			TxHandle:      string(r.TransactionHandle),
			ExplorerURL:   explorerLink(explorerTxURL, r.TransactionHandle),
			FinalizedAt:   r.FinalizedAt,
		}
	}

	if f := flow.Failure; f != nil {
		b.Failure = &api.Failure{
			Code:             f.Code,
			Reason:           f.Reason,
			FundsTransferred: f.FundsTransferred,
			RequiresSupport:  f.FundsTransferred,
		}
	}

	return b
}

func explorerLink(format string, handle domain.TransactionHandle) string {
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, handle)
}
