package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentInitiator submits the booking payment through the payer's wallet.
type PaymentInitiator struct {
	wallet application.Wallet
	logger *slog.Logger
}

func NewPaymentInitiator(wallet application.Wallet, logger *slog.Logger) *PaymentInitiator {
	return &PaymentInitiator{
		wallet: wallet,
		logger: logger,
	}
}

// SendPayment transfers price, in native currency, to the payee. The returned handle only
// acknowledges submission, not settlement. The call waits as long as the wallet does;
// only ctx bounds it.
func (p *PaymentInitiator) SendPayment(ctx context.Context, to domain.NormalizedAddress, price decimal.Decimal) (domain.TransactionHandle, error) {
	from := p.wallet.ConnectedAddress(ctx)
	if from == "" {
		return "", domain.NewWalletNotConnectedError()
	}

	amount, err := domain.ToBaseUnits(price)
	if err != nil {
		return "", err
	}

	p.logger.Info("requesting wallet transfer",
		"from", from,
		"to", to.String(),
		"amount", amount.String(),
	)

	handle, err := p.wallet.SendTransfer(ctx, to, amount)
	if err != nil {
		var unconfirmed *domain.UnconfirmedTransferError
		if errors.As(err, &unconfirmed) {
			p.logger.Error("wallet transfer outcome unknown", "to", to.String(), "tx_handle", unconfirmed.Handle, "error", err)
		} else {
			p.logger.Warn("wallet transfer not submitted", "to", to.String(), "error", err)
		}
		return "", domain.NewTransactionRejectedError(err)
	}
	if handle == "" {
		return "", domain.NewTransactionRejectedError(domain.ErrMissingTransactionHandle)
	}

	p.logger.Info("wallet transfer submitted", "tx_handle", handle)
	return handle, nil
}
