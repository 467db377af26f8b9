package domain

// SettlementStatus is the on-chain state of a submitted transfer as seen by the reconciler.
type SettlementStatus string

const (
	SettlementUnknown    SettlementStatus = ""
	SettlementPending    SettlementStatus = "PENDING"
	SettlementConfirmed  SettlementStatus = "CONFIRMED"
	SettlementReverted   SettlementStatus = "REVERTED"
	SettlementMismatched SettlementStatus = "MISMATCHED"
)

// Settled reports whether the status is final and needs no further checks.
func (s SettlementStatus) Settled() bool {
	return s == SettlementConfirmed || s == SettlementReverted || s == SettlementMismatched
}
