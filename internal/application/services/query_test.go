package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/agrivault-booking/internal/application/mocks"
	"github.com/DanielPopoola/agrivault-booking/internal/application/services"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWarehouseQueryService_List(t *testing.T) {
	listings := []domain.Warehouse{
		{ID: "wh-1", IsBooked: false},
		{ID: "wh-2", IsBooked: true},
		{ID: "wh-3", IsBooked: false},
	}

	t.Run("returns every listing", func(t *testing.T) {
		reader := mocks.NewMockWarehouseReader(t)
		reader.EXPECT().ListWarehouses(mock.Anything).Return(listings, nil).Once()

		got, err := services.NewWarehouseQueryService(reader).List(context.Background(), false)

		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("filters booked listings", func(t *testing.T) {
		reader := mocks.NewMockWarehouseReader(t)
		reader.EXPECT().ListWarehouses(mock.Anything).Return(listings, nil).Once()

		got, err := services.NewWarehouseQueryService(reader).List(context.Background(), true)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "wh-1", got[0].ID)
		assert.Equal(t, "wh-3", got[1].ID)
	})
}
