package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the number of fractional digits of the chain's native currency.
const NativeDecimals = 8

// TransactionHandle identifies a submitted transfer on a public ledger explorer.
type TransactionHandle string

// ToBaseUnits converts a decimal price into the native currency's smallest unit.
// The conversion is exact: prices with more than NativeDecimals fractional digits are
// rejected instead of rounded.
func ToBaseUnits(price decimal.Decimal) (*big.Int, error) {
	if price.Sign() <= 0 {
		return nil, NewInvalidPriceError("price must be positive, got " + price.String())
	}

	scaled := price.Shift(NativeDecimals)
	if !scaled.IsInteger() {
		return nil, NewInvalidPriceError("price " + price.String() + " has more than 8 fractional digits")
	}

	return scaled.BigInt(), nil
}
