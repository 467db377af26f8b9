// Package cache keeps short-lived copies of warehouse listings so the storefront does not
// hit the warehouse API on every page view.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const listKey = "all"

// WarehouseCache wraps a WarehouseReader with expiring LRU caches for the listing and
// for individual details.
type WarehouseCache struct {
	inner   application.WarehouseReader
	details *expirable.LRU[string, domain.Warehouse]
	lists   *expirable.LRU[string, []domain.Warehouse]
}

func NewWarehouseCache(inner application.WarehouseReader, size int, ttl time.Duration) *WarehouseCache {
	if size <= 0 {
		size = 256
	}
	return &WarehouseCache{
		inner:   inner,
		details: expirable.NewLRU[string, domain.Warehouse](size, nil, ttl),
		lists:   expirable.NewLRU[string, []domain.Warehouse](1, nil, ttl),
	}
}

func (c *WarehouseCache) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	if ws, ok := c.lists.Get(listKey); ok {
		return slices.Clone(ws), nil
	}

	ws, err := c.inner.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	c.lists.Add(listKey, slices.Clone(ws))
	return ws, nil
}

func (c *WarehouseCache) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	if w, ok := c.details.Get(id); ok {
		return &w, nil
	}

	w, err := c.inner.GetWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	c.details.Add(id, *w)
	return w, nil
}

// InvalidateWarehouse drops the cached detail for id and the cached listing, both of
// which show its booked flag.
func (c *WarehouseCache) InvalidateWarehouse(id string) {
	c.details.Remove(id)
	c.lists.Remove(listKey)
}
