package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/application/mocks"
	"github.com/DanielPopoola/agrivault-booking/internal/application/services"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinalizationCoordinator_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("finalized invalidates cached views", func(t *testing.T) {
		finalizer := mocks.NewMockBookingFinalizer(t)
		cache := mocks.NewMockCacheInvalidator(t)
		c := services.NewFinalizationCoordinator(finalizer, cache, time.Second, discardLogger())

		finalizer.EXPECT().FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).Return(nil).Once()
		cache.EXPECT().InvalidateWarehouse(testWarehouseID).Return().Once()

		outcome, err := c.Finalize(ctx, session(), testWarehouseID, testHandle)

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeFinalized, outcome)
	})

	t.Run("conflict is already booked", func(t *testing.T) {
		finalizer := mocks.NewMockBookingFinalizer(t)
		c := services.NewFinalizationCoordinator(finalizer, nil, time.Second, discardLogger())

		finalizer.EXPECT().
			FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
			Return(&application.UpstreamError{Message: "already booked", StatusCode: 409}).
			Once()

		outcome, err := c.Finalize(ctx, session(), testWarehouseID, testHandle)

		assert.Equal(t, domain.OutcomeAlreadyBooked, outcome)
		assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	})

	t.Run("server error is finalization error", func(t *testing.T) {
		finalizer := mocks.NewMockBookingFinalizer(t)
		c := services.NewFinalizationCoordinator(finalizer, nil, time.Second, discardLogger())

		finalizer.EXPECT().
			FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
			Return(&application.UpstreamError{Message: "boom", StatusCode: 500}).
			Once()

		outcome, err := c.Finalize(ctx, session(), testWarehouseID, testHandle)

		assert.Equal(t, domain.OutcomeFinalizationError, outcome)
		assert.ErrorIs(t, err, domain.ErrFinalization)
	})

	t.Run("network error is finalization error", func(t *testing.T) {
		finalizer := mocks.NewMockBookingFinalizer(t)
		c := services.NewFinalizationCoordinator(finalizer, nil, time.Second, discardLogger())

		finalizer.EXPECT().
			FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
			Return(errors.New("connection refused")).
			Once()

		outcome, err := c.Finalize(ctx, session(), testWarehouseID, testHandle)

		assert.Equal(t, domain.OutcomeFinalizationError, outcome)
		assert.ErrorIs(t, err, domain.ErrFinalization)
	})

	t.Run("missing handle never calls backend", func(t *testing.T) {
		finalizer := mocks.NewMockBookingFinalizer(t)
		c := services.NewFinalizationCoordinator(finalizer, nil, time.Second, discardLogger())

		_, err := c.Finalize(ctx, session(), testWarehouseID, "")

		assert.ErrorIs(t, err, domain.ErrMissingTransactionHandle)
		finalizer.AssertNotCalled(t, "FinalizeBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing session never calls backend", func(t *testing.T) {
		finalizer := mocks.NewMockBookingFinalizer(t)
		c := services.NewFinalizationCoordinator(finalizer, nil, time.Second, discardLogger())

		outcome, err := c.Finalize(ctx, domain.Session{}, testWarehouseID, testHandle)

		assert.Equal(t, domain.OutcomeFinalizationError, outcome)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		finalizer.AssertNotCalled(t, "FinalizeBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
