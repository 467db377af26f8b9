package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// ReceiptClient is the subset of the RPC client used by the verifier.
type ReceiptClient interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *gethtypes.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
}

// SettlementVerifier checks that a submitted transfer landed with the expected payee
// and value.
type SettlementVerifier struct {
	client     ReceiptClient
	valueScale *big.Int
}

func NewSettlementVerifier(client ReceiptClient, cfg config.WalletConfig) *SettlementVerifier {
	return &SettlementVerifier{
		client:     client,
		valueScale: valueScale(cfg.ValueExponent),
	}
}

// Confirm reports SettlementPending while the transfer is unknown or unmined.
func (v *SettlementVerifier) Confirm(ctx context.Context, handle domain.TransactionHandle, to domain.NormalizedAddress, amount *big.Int) (domain.SettlementStatus, error) {
	raw, err := hexutil.Decode(string(handle))
	if err != nil || len(raw) != common.HashLength {
		return domain.SettlementUnknown, fmt.Errorf("transaction handle %q is not a transaction hash", handle)
	}
	hash := common.BytesToHash(raw)

	tx, pending, err := v.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return domain.SettlementPending, nil
		}
		return domain.SettlementUnknown, fmt.Errorf("fetch transaction: %w", err)
	}
	if pending {
		return domain.SettlementPending, nil
	}

	expectedTo := common.HexToAddress(to.String())
	expectedValue := new(big.Int).Mul(amount, v.valueScale)
	if tx.To() == nil || *tx.To() != expectedTo || tx.Value().Cmp(expectedValue) != 0 {
		return domain.SettlementMismatched, nil
	}

	receipt, err := v.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return domain.SettlementPending, nil
		}
		return domain.SettlementUnknown, fmt.Errorf("fetch receipt: %w", err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return domain.SettlementReverted, nil
	}
	return domain.SettlementConfirmed, nil
}
