package chain_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/DanielPopoola/agrivault-booking/internal/infrastructure/chain"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxClient struct {
	nonce   uint64
	sent    []*gethtypes.Transaction
	sendErr error

	// interrupt ends the caller's context while the transaction is in flight
	interrupt context.CancelFunc
}

func (f *fakeTxClient) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeTxClient) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeTxClient) SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error {
	if f.interrupt != nil {
		f.sent = append(f.sent, tx)
		f.interrupt()
		return ctx.Err()
	}
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	f.nonce++
	return nil
}

func walletConfig(t *testing.T) (config.WalletConfig, common.Address) {
	t.Helper()
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)
	return config.WalletConfig{
		ChainID:       296,
		GasLimit:      21000,
		ValueExponent: 10,
		PrivateKey:    "0x" + hex.EncodeToString(gethcrypto.FromECDSA(key)),
	}, gethcrypto.PubkeyToAddress(key.PublicKey)
}

func TestWallet_SendTransfer(t *testing.T) {
	cfg, from := walletConfig(t)
	client := &fakeTxClient{nonce: 7}
	wallet, err := chain.NewWallet(client, cfg)
	require.NoError(t, err)

	payee := domain.NormalizedAddress("0x0000000000000000000000000000000000003039")

	handle, err := wallet.SendTransfer(context.Background(), payee, big.NewInt(2_500_000_000))

	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	tx := client.sent[0]
	assert.Equal(t, tx.Hash().Hex(), string(handle))
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, common.HexToAddress(payee.String()), *tx.To())
	// 25 HBAR in tinybars, scaled to weibars
	assert.Equal(t, "25000000000000000000", tx.Value().String())

	sender, err := gethtypes.Sender(gethtypes.LatestSignerForChainID(big.NewInt(296)), tx)
	require.NoError(t, err)
	assert.Equal(t, from, sender)
	assert.Equal(t, from.Hex(), wallet.ConnectedAddress(context.Background()))
}

func TestWallet_NotConnected(t *testing.T) {
	client := &fakeTxClient{}
	wallet, err := chain.NewWallet(client, config.WalletConfig{ChainID: 296})
	require.NoError(t, err)

	assert.Empty(t, wallet.ConnectedAddress(context.Background()))

	_, err = wallet.SendTransfer(context.Background(), "0x0000000000000000000000000000000000003039", big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	assert.Empty(t, client.sent)
}

func TestWallet_RejectsBadKey(t *testing.T) {
	_, err := chain.NewWallet(&fakeTxClient{}, config.WalletConfig{PrivateKey: "not-hex"})

	assert.Error(t, err)
}

func TestWallet_SendError(t *testing.T) {
	cfg, _ := walletConfig(t)
	client := &fakeTxClient{sendErr: errors.New("insufficient funds for gas * price + value")}
	wallet, err := chain.NewWallet(client, cfg)
	require.NoError(t, err)

	_, err = wallet.SendTransfer(context.Background(), "0x0000000000000000000000000000000000003039", big.NewInt(1))

	assert.ErrorContains(t, err, "insufficient funds")
	var unconfirmed *domain.UnconfirmedTransferError
	assert.False(t, errors.As(err, &unconfirmed))
}

func TestWallet_CancelledBroadcastKeepsHandle(t *testing.T) {
	cfg, _ := walletConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	client := &fakeTxClient{interrupt: cancel}
	wallet, err := chain.NewWallet(client, cfg)
	require.NoError(t, err)

	handle, err := wallet.SendTransfer(ctx, "0x0000000000000000000000000000000000003039", big.NewInt(1))

	assert.Empty(t, handle)
	assert.ErrorIs(t, err, context.Canceled)
	var unconfirmed *domain.UnconfirmedTransferError
	require.ErrorAs(t, err, &unconfirmed)
	require.Len(t, client.sent, 1)
	assert.Equal(t, client.sent[0].Hash().Hex(), string(unconfirmed.Handle))
}
