package domain

import (
	"math/big"
	"regexp"
	"strings"
)

const (
	// AddressHexLength is the number of hex digits in a 20-byte chain address.
	AddressHexLength = 40
	addressBits      = AddressHexLength * 4
)

var (
	hexAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	tripletPattern    = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)$`)
)

// PaymentIdentifier is the payee-supplied string stored on a warehouse record: either an
// account triplet "shard.realm.number" or an already-valid 0x address.
type PaymentIdentifier string

// NormalizedAddress is a 0x-prefixed, 40 hex digit chain address.
type NormalizedAddress string

func (a NormalizedAddress) String() string {
	return string(a)
}

// IsHexAddress reports whether s matches the 0x + 40 hex digit grammar.
func IsHexAddress(s string) bool {
	return hexAddressPattern.MatchString(s)
}

// NormalizePaymentIdentifier converts a payment identifier into a chain address.
//
// A hex address is returned unchanged, case preserved. A triplet is mapped to its
// long-zero form: the account number in hex, left-padded with zeros to 40 digits.
// Account numbers that need more than 160 bits are rejected, never truncated.
func NormalizePaymentIdentifier(raw string) (NormalizedAddress, error) {
	if raw == "" {
		return "", &InvalidPaymentIdentifierError{Raw: raw, Reason: "identifier is empty"}
	}

	if IsHexAddress(raw) {
		return NormalizedAddress(raw), nil
	}

	m := tripletPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", &InvalidPaymentIdentifierError{
			Raw:    raw,
			Reason: `expected an account ID "shard.realm.number" or a 0x-prefixed 40 hex digit address`,
		}
	}

	num, ok := new(big.Int).SetString(m[3], 10)
	if !ok {
		return "", &InvalidPaymentIdentifierError{Raw: raw, Reason: "account number is not a decimal integer"}
	}
	if num.BitLen() > addressBits {
		return "", &InvalidPaymentIdentifierError{Raw: raw, Reason: "account number does not fit in a 20-byte address"}
	}

	hex := num.Text(16)
	return NormalizedAddress("0x" + strings.Repeat("0", AddressHexLength-len(hex)) + hex), nil
}
