// Package chain connects the booking flow to an EVM-compatible JSON-RPC endpoint: a
// server-held signing wallet for transfers and a receipt checker for reconciliation.
package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// TxClient is the subset of the RPC client used to submit transfers.
type TxClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
}

// DialEVMClient initialises an RPC client for the provided endpoint.
func DialEVMClient(endpoint string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("evm endpoint required")
	}
	return ethclient.Dial(trimmed)
}

// Wallet signs native-currency transfers with a key loaded from configuration.
type Wallet struct {
	client     TxClient
	key        *ecdsa.PrivateKey
	from       common.Address
	chainID    *big.Int
	gasLimit   uint64
	valueScale *big.Int

	// serialises nonce allocation
	mu sync.Mutex
}

// NewWallet builds a wallet from cfg. Without a private key the wallet reports no
// connected address and refuses to send.
func NewWallet(client TxClient, cfg config.WalletConfig) (*Wallet, error) {
	w := &Wallet{
		client:     client,
		chainID:    big.NewInt(cfg.ChainID),
		gasLimit:   cfg.GasLimit,
		valueScale: valueScale(cfg.ValueExponent),
	}

	material := strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x")
	if material == "" {
		return w, nil
	}

	key, err := gethcrypto.HexToECDSA(material)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet private key: %w", err)
	}
	w.key = key
	w.from = gethcrypto.PubkeyToAddress(key.PublicKey)
	return w, nil
}

func (w *Wallet) ConnectedAddress(context.Context) string {
	if w.key == nil {
		return ""
	}
	return w.from.Hex()
}

// SendTransfer submits a value transfer and returns its hash once the node accepted it.
func (w *Wallet) SendTransfer(ctx context.Context, to domain.NormalizedAddress, amount *big.Int) (domain.TransactionHandle, error) {
	if w.key == nil {
		return "", domain.ErrWalletNotConnected
	}
	if !domain.IsHexAddress(to.String()) {
		return "", fmt.Errorf("payee %q is not a chain address", to)
	}
	if amount == nil || amount.Sign() <= 0 {
		return "", fmt.Errorf("amount must be positive")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	nonce, err := w.client.PendingNonceAt(ctx, w.from)
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}
	gasPrice, err := w.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	payee := common.HexToAddress(to.String())
	tx := gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &payee,
		Value:    new(big.Int).Mul(amount, w.valueScale),
		Gas:      w.gasLimit,
		GasPrice: gasPrice,
	})

	signed, err := gethtypes.SignTx(tx, gethtypes.LatestSignerForChainID(w.chainID), w.key)
	if err != nil {
		return "", fmt.Errorf("sign transfer: %w", err)
	}

	handle := domain.TransactionHandle(signed.Hash().Hex())
	if err := w.client.SendTransaction(ctx, signed); err != nil {
		// The node may have accepted the transaction before the context ended.
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", &domain.UnconfirmedTransferError{Handle: handle, Err: err}
		}
		return "", err
	}

	return handle, nil
}

// valueScale converts base units into the RPC's value unit, 10^exp per base unit.
func valueScale(exp int) *big.Int {
	if exp <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}
