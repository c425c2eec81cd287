// Package exchange converts between the two currencies at fixed
// directional rates and produces the append-only ledger entries.
//
// The rates are intentionally asymmetric: 100 CCC buys 1 CS, but 1 CS
// buys back only 50 CCC, so a round trip loses half its value. This is
// a game-economy sink, not a bug.
package exchange

import (
	"time"

	"github.com/google/uuid"

	"github.com/stardrift-game/stardrift/internal/model"
)

const (
	// CccPerCs is the CCC price of one CS when selling soft currency
	CccPerCs = 100.0
	// CccPerCsBack is the CCC received for one CS when buying back
	CccPerCsBack = 50.0
)

// Service applies exchanges to player balances and builds their records
type Service struct{}

// New creates an exchange service
func New() *Service {
	return &Service{}
}

// CccToCs converts amount CCC into CS at 100:1. It debits and credits the
// player in place and returns the ledger record for the caller to persist
// atomically with the player.
func (s *Service) CccToCs(p *model.Player, amount float64, now time.Time) (*model.ExchangeRecord, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}
	if amount > p.CCC {
		return nil, model.ErrInsufficientFunds
	}

	result := amount / CccPerCs
	p.CCC -= amount
	p.CS += result

	return s.newRecord(p.ID, model.ExchangeCccToCs, amount, result, now), nil
}

// CsToCcc converts amount CS into CCC at 1:50
func (s *Service) CsToCcc(p *model.Player, amount float64, now time.Time) (*model.ExchangeRecord, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}
	if amount > p.CS {
		return nil, model.ErrInsufficientFunds
	}

	result := amount * CccPerCsBack
	p.CS -= amount
	p.CCC += result

	return s.newRecord(p.ID, model.ExchangeCsToCcc, amount, result, now), nil
}

func (s *Service) newRecord(playerID model.PlayerID, dir model.ExchangeDirection, source, result float64, now time.Time) *model.ExchangeRecord {
	return &model.ExchangeRecord{
		ID:           uuid.NewString(),
		PlayerID:     playerID,
		Direction:    dir,
		SourceAmount: source,
		ResultAmount: result,
		CreatedAt:    now,
	}
}
