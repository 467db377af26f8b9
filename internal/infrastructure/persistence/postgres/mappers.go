package postgres

import (
	"fmt"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainModel: maps db model to a booking flow. The failure cause is not persisted,
// only its code and reason.
func toDomainModel(m AttemptModel) (domain.BookingFlow, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return domain.BookingFlow{}, fmt.Errorf("attempt %s has invalid price %q: %w", m.ID, m.Price, err)
	}

	flow := domain.BookingFlow{
		Stage: domain.Stage(m.Stage),
		Attempt: domain.BookingAttempt{
			ID:                m.ID,
			WarehouseID:       m.WarehouseID,
			UserID:            m.UserID,
			Price:             price,
			PaymentIdentifier: domain.PaymentIdentifier(m.PaymentIdentifier),
			WalletAddress:     m.WalletAddress,
			Payee:             domain.NormalizedAddress(m.PayeeAddress),
			StartedAt:         m.StartedAt,
		},
		Warehouse: domain.Warehouse{
			ID:                m.WarehouseID,
			Name:              m.WarehouseName,
			Location:          m.Location,
			Price:             price,
			PaymentIdentifier: domain.PaymentIdentifier(m.PaymentIdentifier),
		},
	}

	if m.TxHandle != nil {
		h := domain.TransactionHandle(*m.TxHandle)
		flow.Attempt.Handle = &h
	}
	if m.Outcome != nil {
		o := domain.FinalizationOutcome(*m.Outcome)
		flow.Attempt.Outcome = &o
	}
	if m.FailureCode != nil {
		f := &domain.Failure{Code: *m.FailureCode, FundsTransferred: m.FundsTransferred}
		if m.FailureReason != nil {
			f.Reason = *m.FailureReason
		}
		flow.Failure = f
	}
	if flow.Stage == domain.StageComplete && flow.Attempt.Handle != nil {
		r := &domain.Receipt{
			AttemptID:         m.ID,
			WarehouseID:       m.WarehouseID,
			WarehouseName:     m.WarehouseName,
			Location:          m.Location,
			Amount:            price,
			Payee:             flow.Attempt.Payee,
			TransactionHandle: *flow.Attempt.Handle,
		}
		if m.FinalizedAt != nil {
			r.FinalizedAt = *m.FinalizedAt
		}
		flow.Receipt = r
	}

	return flow, nil
}

// toDBModel: maps a booking flow to db model
func toDBModel(f domain.BookingFlow) AttemptModel {
	m := AttemptModel{
		ID:                f.Attempt.ID,
		WarehouseID:       f.Attempt.WarehouseID,
		WarehouseName:     f.Warehouse.Name,
		Location:          f.Warehouse.Location,
		UserID:            f.Attempt.UserID,
		Price:             f.Attempt.Price.String(),
		PaymentIdentifier: string(f.Attempt.PaymentIdentifier),
		WalletAddress:     f.Attempt.WalletAddress,
		PayeeAddress:      f.Attempt.Payee.String(),
		Stage:             string(f.Stage),
		FundsTransferred:  f.FundsTransferred(),
		StartedAt:         f.Attempt.StartedAt,
	}

	if f.Attempt.Handle != nil {
		h := string(*f.Attempt.Handle)
		m.TxHandle = &h
	}
	if f.Attempt.Outcome != nil {
		o := string(*f.Attempt.Outcome)
		m.Outcome = &o
	}
	if f.Failure != nil {
		m.FailureCode = &f.Failure.Code
		m.FailureReason = &f.Failure.Reason
		m.FundsTransferred = f.Failure.FundsTransferred
	}
	if f.Receipt != nil {
		at := f.Receipt.FinalizedAt
		m.FinalizedAt = &at
	}

	return m
}
