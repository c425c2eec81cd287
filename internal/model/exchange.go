package model

import "time"

// ExchangeDirection identifies which way a currency exchange went
type ExchangeDirection string

const (
	// ExchangeCccToCs converts soft currency to hard currency (100 CCC = 1 CS)
	ExchangeCccToCs ExchangeDirection = "ccc_to_cs"
	// ExchangeCsToCcc converts hard currency to soft currency (1 CS = 50 CCC)
	ExchangeCsToCcc ExchangeDirection = "cs_to_ccc"
)

// ExchangeRecord is an append-only ledger entry for a completed currency
// exchange. Records are never mutated or deleted.
type ExchangeRecord struct {
	ID           string
	PlayerID     PlayerID
	Direction    ExchangeDirection
	SourceAmount float64
	ResultAmount float64
	CreatedAt    time.Time
}
