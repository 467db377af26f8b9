package services

import (
	"context"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

type WarehouseQueryService struct {
	warehouses application.WarehouseReader
}

func NewWarehouseQueryService(warehouses application.WarehouseReader) *WarehouseQueryService {
	return &WarehouseQueryService{
		warehouses: warehouses,
	}
}

// List returns all listings, or only the ones still open for booking.
func (s *WarehouseQueryService) List(ctx context.Context, onlyAvailable bool) ([]domain.Warehouse, error) {
	all, err := s.warehouses.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	if !onlyAvailable {
		return all, nil
	}

	available := make([]domain.Warehouse, 0, len(all))
	for _, w := range all {
		if w.Available() {
			available = append(available, w)
		}
	}
	return available, nil
}

func (s *WarehouseQueryService) Get(ctx context.Context, id string) (*domain.Warehouse, error) {
	return s.warehouses.GetWarehouse(ctx, id)
}
