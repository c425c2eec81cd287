// Package accrual implements the idle-income engine: converting elapsed
// wall-clock time into mined CCC, bounded by the remaining asteroid pool
// and the cargo tier's capacity rules.
package accrual

import (
	"math"
	"time"

	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/model"
)

const secondsPerDay = 86400

// AutoCollectBatch is the increment in which the auto-collect cargo tier
// moves mined CCC to the main balance. Amounts below one batch stay in
// cargo; this batching is deliberate, not rounding.
const AutoCollectBatch = 100

// Report describes what a single accrual evaluation did
type Report struct {
	// Mined is the CCC drawn from the asteroid pool into cargo
	Mined float64
	// AutoCollected is the CCC moved from cargo to the main balance
	// (auto-collect tier only, always a multiple of AutoCollectBatch)
	AutoCollected float64
	// Overflow is the mined CCC discarded by the capacity clamp.
	// Capacity is a hard cap: overflow is lost, not refunded to the pool.
	Overflow float64
	// Elapsed is the clamped time span the evaluation integrated over
	Elapsed time.Duration
}

// Engine advances player cargo state to reflect mining income accrued
// since the last evaluation. Evaluation is lazy: it runs whenever player
// state is read or mutated, so idle players cost nothing.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an accrual engine over the given catalog
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Evaluate integrates mining income from p.LastEvaluatedAt to now and
// applies the tier's post-processing. It mutates p in place and reports
// what moved. Evaluation is a no-op (state untouched) unless the player
// owns at least one drone and one asteroid and the resource pool is
// non-empty.
func (e *Engine) Evaluate(p *model.Player, now time.Time) (Report, error) {
	var rep Report

	if len(p.Drones) == 0 || len(p.Asteroids) == 0 || p.AsteroidResources <= 0 {
		return rep, nil
	}

	daily, err := e.catalog.DailyIncome(p.Drones)
	if err != nil {
		return rep, err
	}

	elapsed := now.Sub(p.LastEvaluatedAt)
	if elapsed < 0 {
		// Clock skew: never accrue into the past, and never move the
		// evaluation timestamp backwards
		return rep, nil
	}
	rep.Elapsed = elapsed

	mined := daily / secondsPerDay * elapsed.Seconds()
	if mined > p.AsteroidResources {
		mined = p.AsteroidResources
	}
	rep.Mined = mined

	p.AsteroidResources -= mined
	p.CargoCCC += mined

	tier, err := e.catalog.Tier(p.CargoTier)
	if err != nil {
		return rep, err
	}

	if tier.AutoCollect {
		if p.CargoCCC >= AutoCollectBatch {
			batch := math.Floor(p.CargoCCC/AutoCollectBatch) * AutoCollectBatch
			p.CargoCCC -= batch
			p.CCC += batch
			rep.AutoCollected = batch
		}
	} else if p.CargoCCC > tier.Capacity {
		rep.Overflow = p.CargoCCC - tier.Capacity
		p.CargoCCC = tier.Capacity
	}

	p.LastEvaluatedAt = now
	return rep, nil
}
