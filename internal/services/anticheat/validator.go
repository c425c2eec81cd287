// Package anticheat validates client-reported tap batches before the
// server trusts their energy and cargo deltas.
package anticheat

import (
	"math"
	"time"

	"github.com/stardrift-game/stardrift/internal/model"
)

// TapYield is the CCC credited per manual tap
const TapYield = 1.0

// yieldTolerance absorbs float drift in client-side cargo arithmetic
const yieldTolerance = 1e-6

// Config controls validation behavior
type Config struct {
	// StrictYield recomputes the cargo delta server-side as
	// clicks * TapYield and rejects batches whose claimed cargo does
	// not match. When off (the default), the server trusts the
	// client's cargo gain once the rate, energy, and cargo-floor
	// checks pass.
	StrictYield bool
}

// DefaultConfig returns the default validation behavior
func DefaultConfig() Config {
	return Config{StrictYield: false}
}

// Validator checks tap batches for physical plausibility
type Validator struct {
	cfg Config
}

// New creates a validator with the given config
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate checks a reported tap batch against the player's current state
// and the elapsed wall-clock time. It does not mutate the player; the
// ledger commits the deltas only after Validate succeeds.
//
// Rules:
//  1. Rate limit: at most one tap per whole second since the last batch.
//  2. Energy accounting: exactly one energy spent per tap, and energy
//     can never go negative.
//  3. Cargo accounting: taps only ever add cargo, so a claimed cargo
//     below the player's current balance is implausible.
func (v *Validator) Validate(p *model.Player, report model.TapReport, now time.Time) error {
	if report.Clicks < 0 {
		return model.ErrSuspectedCheating
	}

	elapsed := int(math.Floor(now.Sub(p.LastTapAt).Seconds()))
	if elapsed < 0 {
		elapsed = 0
	}
	if report.Clicks > elapsed {
		return model.ErrSuspectedCheating
	}

	if report.EnergyAfter < 0 {
		return model.ErrSuspectedCheating
	}
	if p.Energy-report.EnergyAfter != report.Clicks {
		return model.ErrSuspectedCheating
	}

	if report.CargoAfter < p.CargoCCC-yieldTolerance {
		return model.ErrSuspectedCheating
	}

	if v.cfg.StrictYield {
		expected := p.CargoCCC + float64(report.Clicks)*TapYield
		if math.Abs(report.CargoAfter-expected) > yieldTolerance {
			return model.ErrSuspectedCheating
		}
	}

	return nil
}
