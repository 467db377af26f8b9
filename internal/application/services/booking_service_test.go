package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/application/mocks"
	"github.com/DanielPopoola/agrivault-booking/internal/application/services"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testWarehouseID = "wh-1"
	testToken       = "session-token"
	testPayer       = "0x1111111111111111111111111111111111111111"
	testPayee       = domain.NormalizedAddress("0x0000000000000000000000000000000000003039")
	testHandle      = domain.TransactionHandle("0xabc123")
)

type bookingFixture struct {
	reader    *mocks.MockWarehouseReader
	wallet    *mocks.MockWallet
	finalizer *mocks.MockBookingFinalizer
	cache     *mocks.MockCacheInvalidator
	ledger    *mocks.MockAttemptLedger
	service   *services.BookingService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBookingFixture(t *testing.T, withLedger bool, finalizeTimeout time.Duration) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		reader:    mocks.NewMockWarehouseReader(t),
		wallet:    mocks.NewMockWallet(t),
		finalizer: mocks.NewMockBookingFinalizer(t),
		cache:     mocks.NewMockCacheInvalidator(t),
	}

	logger := discardLogger()
	initiator := services.NewPaymentInitiator(f.wallet, logger)
	coordinator := services.NewFinalizationCoordinator(f.finalizer, f.cache, finalizeTimeout, logger)

	var recorder application.AttemptRecorder
	if withLedger {
		f.ledger = mocks.NewMockAttemptLedger(t)
		recorder = f.ledger
	}

	f.service = services.NewBookingService(f.reader, f.wallet, initiator, coordinator, recorder, nil, logger)
	return f
}

func availableWarehouse() *domain.Warehouse {
	return &domain.Warehouse{
		ID:                testWarehouseID,
		Name:              "Grain Store A",
		Location:          "Kano",
		Price:             decimal.RequireFromString("25"),
		PaymentIdentifier: "0.0.12345",
	}
}

func session() domain.Session {
	return domain.Session{Token: testToken, UserID: "user-1"}
}

func TestBookingService_Book_Success(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().
		SendTransfer(mock.Anything, testPayee, big.NewInt(2_500_000_000)).
		Return(testHandle, nil).
		Once()
	f.finalizer.EXPECT().
		FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
		Return(nil).
		Once()
	f.cache.EXPECT().InvalidateWarehouse(testWarehouseID).Return().Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageComplete, flow.Stage)
	require.NotNil(t, flow.Receipt)
	assert.Equal(t, testHandle, flow.Receipt.TransactionHandle)
	assert.Equal(t, testPayee, flow.Receipt.Payee)
	assert.Equal(t, testPayer, flow.Attempt.WalletAddress)
	assert.NotEmpty(t, flow.Attempt.ID)
}

func TestBookingService_Book_WalletNotConnected(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return("").Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageFailed, flow.Stage)
	assert.Equal(t, domain.ErrCodeWalletNotConnected, flow.Failure.Code)
	assert.False(t, flow.Failure.FundsTransferred)
	f.wallet.AssertNotCalled(t, "SendTransfer", mock.Anything, mock.Anything, mock.Anything)
	f.finalizer.AssertNotCalled(t, "FinalizeBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_SessionMissing(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer).Once()

	flow, err := f.service.Book(context.Background(), domain.Session{}, testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.ErrCodeUnauthenticated, flow.Failure.Code)
	assert.False(t, flow.Failure.FundsTransferred)
	f.wallet.AssertNotCalled(t, "SendTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_WalletCheckedBeforeSession(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return("").Once()

	flow, err := f.service.Book(context.Background(), domain.Session{}, testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageFailed, flow.Stage)
	assert.Equal(t, domain.ErrCodeWalletNotConnected, flow.Failure.Code)
	f.wallet.AssertNotCalled(t, "SendTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_InvalidPaymentIdentifier(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	w := availableWarehouse()
	w.PaymentIdentifier = "owner@example.com"
	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(w, nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer).Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.ErrCodeInvalidPaymentIdentifier, flow.Failure.Code)
	assert.False(t, flow.Failure.FundsTransferred)
	f.wallet.AssertNotCalled(t, "SendTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_WalletRejects(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().
		SendTransfer(mock.Anything, testPayee, mock.Anything).
		Return("", errors.New("user rejected the request")).
		Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageFailed, flow.Stage)
	assert.Equal(t, domain.ErrCodeTransactionRejected, flow.Failure.Code)
	assert.False(t, flow.Failure.FundsTransferred)
	assert.Contains(t, flow.Failure.Reason, "user rejected the request")
	f.finalizer.AssertNumberOfCalls(t, "FinalizeBooking", 0)
}

func TestBookingService_Book_UnconfirmedTransferKeepsHandle(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().
		SendTransfer(mock.Anything, testPayee, mock.Anything).
		Return("", &domain.UnconfirmedTransferError{Handle: testHandle, Err: context.Canceled}).
		Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.ErrCodeTransactionRejected, flow.Failure.Code)
	require.NotNil(t, flow.Attempt.Handle)
	assert.Equal(t, testHandle, *flow.Attempt.Handle)
	assert.Contains(t, flow.Failure.Reason, string(testHandle))
	f.finalizer.AssertNotCalled(t, "FinalizeBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_AlreadyBookedAfterPayment(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().SendTransfer(mock.Anything, testPayee, mock.Anything).Return(testHandle, nil).Once()
	f.finalizer.EXPECT().
		FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
		Return(&application.UpstreamError{Message: "Warehouse is already booked", StatusCode: 409}).
		Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageFailed, flow.Stage)
	assert.Equal(t, domain.ErrCodeAlreadyBooked, flow.Failure.Code)
	assert.True(t, flow.Failure.FundsTransferred)
	require.NotNil(t, flow.Attempt.Handle)
	assert.Equal(t, testHandle, *flow.Attempt.Handle)
	assert.Contains(t, flow.Failure.Reason, string(testHandle))
	f.cache.AssertNotCalled(t, "InvalidateWarehouse", mock.Anything)
}

func TestBookingService_Book_FinalizationTimeout(t *testing.T) {
	f := newBookingFixture(t, false, 20*time.Millisecond)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().SendTransfer(mock.Anything, testPayee, mock.Anything).Return(testHandle, nil).Once()
	f.finalizer.EXPECT().
		FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
		RunAndReturn(func(ctx context.Context, _, _ string, _ domain.TransactionHandle) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.ErrCodeFinalizationError, flow.Failure.Code)
	assert.True(t, flow.Failure.FundsTransferred)
	assert.ErrorIs(t, flow.Failure.Err, context.DeadlineExceeded)
}

func TestBookingService_Book_CallerCancelAfterPaymentStillFinalizes(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().
		SendTransfer(mock.Anything, testPayee, mock.Anything).
		RunAndReturn(func(context.Context, domain.NormalizedAddress, *big.Int) (domain.TransactionHandle, error) {
			cancel()
			return testHandle, nil
		}).
		Once()
	f.finalizer.EXPECT().
		FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).
		RunAndReturn(func(ctx context.Context, _, _ string, _ domain.TransactionHandle) error {
			return ctx.Err()
		}).
		Once()
	f.cache.EXPECT().InvalidateWarehouse(testWarehouseID).Return().Once()

	flow, err := f.service.Book(ctx, session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageComplete, flow.Stage)
}

func TestBookingService_Book_RejectsBookedWarehouse(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	w := availableWarehouse()
	w.IsBooked = true
	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(w, nil).Once()

	_, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWarehouseUnavailable)
	f.wallet.AssertNotCalled(t, "ConnectedAddress", mock.Anything)
}

func TestBookingService_Book_WarehouseNotFound(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	f.reader.EXPECT().
		GetWarehouse(mock.Anything, testWarehouseID).
		Return(nil, domain.NewWarehouseNotFoundError(testWarehouseID)).
		Once()

	_, err := f.service.Book(context.Background(), session(), testWarehouseID)

	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
}

func TestBookingService_Book_RejectsConcurrentAttempt(t *testing.T) {
	f := newBookingFixture(t, false, time.Second)

	inWallet := make(chan struct{})
	release := make(chan struct{})

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.wallet.EXPECT().
		SendTransfer(mock.Anything, testPayee, mock.Anything).
		RunAndReturn(func(context.Context, domain.NormalizedAddress, *big.Int) (domain.TransactionHandle, error) {
			close(inWallet)
			<-release
			return "", errors.New("user rejected the request")
		}).
		Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.service.Book(context.Background(), session(), testWarehouseID)
	}()

	<-inWallet
	_, err := f.service.Book(context.Background(), session(), testWarehouseID)
	close(release)
	wg.Wait()

	assert.ErrorIs(t, err, domain.ErrAttemptInProgress)
}

func TestBookingService_Book_RecordsAttempt(t *testing.T) {
	f := newBookingFixture(t, true, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.ledger.EXPECT().
		Start(mock.Anything, mock.MatchedBy(func(flow domain.BookingFlow) bool {
			return flow.Stage == domain.StageCheckingWallet
		})).
		Return(nil).
		Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.ledger.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(flow domain.BookingFlow) bool {
			return flow.Stage == domain.StageAwaitingSignature
		})).
		Return(nil).
		Once()
	f.wallet.EXPECT().SendTransfer(mock.Anything, testPayee, mock.Anything).Return(testHandle, nil).Once()
	f.ledger.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(flow domain.BookingFlow) bool {
			return flow.Stage == domain.StageFinalizing
		})).
		Return(nil).
		Once()
	f.finalizer.EXPECT().FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).Return(nil).Once()
	f.cache.EXPECT().InvalidateWarehouse(testWarehouseID).Return().Once()
	f.ledger.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(flow domain.BookingFlow) bool {
			return flow.Stage == domain.StageComplete
		})).
		Return(nil).
		Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageComplete, flow.Stage)
}

func TestBookingService_Book_LedgerRejectsConcurrentAttempt(t *testing.T) {
	f := newBookingFixture(t, true, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.ledger.EXPECT().
		Start(mock.Anything, mock.Anything).
		Return(domain.NewAttemptInProgressError(testWarehouseID)).
		Once()

	_, err := f.service.Book(context.Background(), session(), testWarehouseID)

	assert.ErrorIs(t, err, domain.ErrAttemptInProgress)
	f.wallet.AssertNotCalled(t, "ConnectedAddress", mock.Anything)
}

func TestBookingService_Book_ClosedAttemptIsNotPaid(t *testing.T) {
	f := newBookingFixture(t, true, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.ledger.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.ledger.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(fmt.Errorf("attempt x: %w", domain.ErrAttemptClosed))

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageFailed, flow.Stage)
	assert.Equal(t, domain.ErrCodeAbandoned, flow.Failure.Code)
	assert.False(t, flow.Failure.FundsTransferred)
	f.wallet.AssertNotCalled(t, "SendTransfer", mock.Anything, mock.Anything, mock.Anything)
	f.finalizer.AssertNotCalled(t, "FinalizeBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_ClosedAfterPaymentStillFinalizes(t *testing.T) {
	f := newBookingFixture(t, true, time.Second)

	f.reader.EXPECT().GetWarehouse(mock.Anything, testWarehouseID).Return(availableWarehouse(), nil).Once()
	f.ledger.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	f.wallet.EXPECT().ConnectedAddress(mock.Anything).Return(testPayer)
	f.ledger.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(flow domain.BookingFlow) bool {
			return flow.Stage == domain.StageAwaitingSignature
		})).
		Return(nil).
		Once()
	f.wallet.EXPECT().SendTransfer(mock.Anything, testPayee, mock.Anything).Return(testHandle, nil).Once()
	f.ledger.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(flow domain.BookingFlow) bool {
			return flow.Attempt.Handle != nil
		})).
		Return(fmt.Errorf("attempt x: %w", domain.ErrAttemptClosed))
	f.finalizer.EXPECT().FinalizeBooking(mock.Anything, testToken, testWarehouseID, testHandle).Return(nil).Once()
	f.cache.EXPECT().InvalidateWarehouse(testWarehouseID).Return().Once()

	flow, err := f.service.Book(context.Background(), session(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, domain.StageComplete, flow.Stage)
	require.NotNil(t, flow.Receipt)
	assert.Equal(t, testHandle, flow.Receipt.TransactionHandle)
}
