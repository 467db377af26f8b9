package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application/mocks"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPayee  = domain.NormalizedAddress("0x0000000000000000000000000000000000003039")
	testHandle = domain.TransactionHandle("0xabc123")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startedFlow(t *testing.T) domain.BookingFlow {
	t.Helper()
	w := domain.Warehouse{
		ID:                "wh-1",
		Name:              "Grain Store A",
		Price:             decimal.NewFromInt(25),
		PaymentIdentifier: "0.0.12345",
	}
	flow, err := domain.NewBookingFlow("attempt-1", w, "user-1", time.Now()).Begin()
	require.NoError(t, err)
	return flow
}

func finalizingFlow(t *testing.T) domain.BookingFlow {
	t.Helper()
	flow, err := startedFlow(t).WalletChecked("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	flow, err = flow.ResolveAddress()
	require.NoError(t, err)
	flow, err = flow.PaymentSubmitted(testHandle)
	require.NoError(t, err)
	return flow
}

func alreadyBookedFlow(t *testing.T) domain.BookingFlow {
	t.Helper()
	flow, err := finalizingFlow(t).FinalizationSettled(domain.OutcomeAlreadyBooked, testHandle, nil, time.Now())
	require.NoError(t, err)
	return flow
}

func TestReconciler_MarksConfirmedTransfer(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)
	verifier := mocks.NewMockSettlementVerifier(t)

	flow := alreadyBookedFlow(t)
	ledger.EXPECT().FindUnreconciled(mock.Anything, 10).Return([]domain.BookingFlow{flow}, nil).Once()
	verifier.EXPECT().
		Confirm(mock.Anything, testHandle, testPayee, big.NewInt(2_500_000_000)).
		Return(domain.SettlementConfirmed, nil).
		Once()
	ledger.EXPECT().MarkSettlement(mock.Anything, "attempt-1", domain.SettlementConfirmed).Return(nil).Once()

	r := NewReconciler(ledger, verifier, time.Second, 10, discardLogger())
	r.RunOnce(context.Background())
}

func TestReconciler_LeavesPendingTransferAlone(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)
	verifier := mocks.NewMockSettlementVerifier(t)

	ledger.EXPECT().FindUnreconciled(mock.Anything, 10).Return([]domain.BookingFlow{alreadyBookedFlow(t)}, nil).Once()
	verifier.EXPECT().
		Confirm(mock.Anything, testHandle, testPayee, mock.Anything).
		Return(domain.SettlementPending, nil).
		Once()

	r := NewReconciler(ledger, verifier, time.Second, 10, discardLogger())
	r.RunOnce(context.Background())

	ledger.AssertNotCalled(t, "MarkSettlement", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_ContinuesAfterVerifierError(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)
	verifier := mocks.NewMockSettlementVerifier(t)

	first := alreadyBookedFlow(t)
	second := alreadyBookedFlow(t)
	second.Attempt.ID = "attempt-2"

	ledger.EXPECT().FindUnreconciled(mock.Anything, 10).Return([]domain.BookingFlow{first, second}, nil).Once()
	verifier.EXPECT().
		Confirm(mock.Anything, testHandle, testPayee, mock.Anything).
		Return(domain.SettlementUnknown, errors.New("rpc unavailable")).
		Once()
	verifier.EXPECT().
		Confirm(mock.Anything, testHandle, testPayee, mock.Anything).
		Return(domain.SettlementReverted, nil).
		Once()
	ledger.EXPECT().MarkSettlement(mock.Anything, "attempt-2", domain.SettlementReverted).Return(nil).Once()

	r := NewReconciler(ledger, verifier, time.Second, 10, discardLogger())
	r.RunOnce(context.Background())
}

func TestReconciler_LedgerErrorStopsCycle(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)
	verifier := mocks.NewMockSettlementVerifier(t)

	ledger.EXPECT().FindUnreconciled(mock.Anything, 10).Return(nil, errors.New("db down")).Once()

	r := NewReconciler(ledger, verifier, time.Second, 10, discardLogger())
	r.RunOnce(context.Background())

	verifier.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStaleAttemptWorker_AbandonsBeforePayment(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ledger.EXPECT().FindStale(mock.Anything, now.Add(-15*time.Minute), 5).Return([]domain.BookingFlow{startedFlow(t)}, nil).Once()
	ledger.EXPECT().
		CloseStale(mock.Anything, mock.MatchedBy(func(f domain.BookingFlow) bool {
			return f.Stage == domain.StageFailed &&
				f.Failure.Code == domain.ErrCodeAbandoned &&
				!f.Failure.FundsTransferred
		}), now.Add(-15*time.Minute)).
		Return(true, nil).
		Once()

	w := NewStaleAttemptWorker(ledger, time.Second, 15*time.Minute, 5, discardLogger())
	w.now = func() time.Time { return now }

	require.NoError(t, w.processStale(context.Background()))
}

func TestStaleAttemptWorker_AbandonAfterPaymentKeepsHandle(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)

	var saved domain.BookingFlow
	ledger.EXPECT().FindStale(mock.Anything, mock.Anything, 5).Return([]domain.BookingFlow{finalizingFlow(t)}, nil).Once()
	ledger.EXPECT().
		CloseStale(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, f domain.BookingFlow, _ time.Time) { saved = f }).
		Return(true, nil).
		Once()

	w := NewStaleAttemptWorker(ledger, time.Second, time.Minute, 5, discardLogger())
	require.NoError(t, w.processStale(context.Background()))

	require.NotNil(t, saved.Failure)
	assert.True(t, saved.Failure.FundsTransferred)
	assert.Contains(t, saved.Failure.Reason, string(testHandle))
}

func TestStaleAttemptWorker_SkipsAttemptThatMovedOn(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)

	ledger.EXPECT().FindStale(mock.Anything, mock.Anything, 5).Return([]domain.BookingFlow{startedFlow(t)}, nil).Once()
	ledger.EXPECT().CloseStale(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

	w := NewStaleAttemptWorker(ledger, time.Second, time.Minute, 5, discardLogger())

	require.NoError(t, w.processStale(context.Background()))
	ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStaleAttemptWorker_ReturnsLedgerError(t *testing.T) {
	ledger := mocks.NewMockAttemptLedger(t)
	ledger.EXPECT().FindStale(mock.Anything, mock.Anything, 5).Return(nil, errors.New("db down")).Once()

	w := NewStaleAttemptWorker(ledger, time.Second, time.Minute, 5, discardLogger())
	assert.Error(t, w.processStale(context.Background()))
}
