package response

import (
	"time"

	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID                string    `json:"id"`
	CCC               float64   `json:"ccc"`
	CS                float64   `json:"cs"`
	Energy            int       `json:"energy"`
	Drones            []int     `json:"drones"`
	Asteroids         []int     `json:"asteroids"`
	CargoTier         int       `json:"cargo_tier"`
	CargoCCC          float64   `json:"cargo_ccc"`
	AsteroidResources float64   `json:"asteroid_resources"`
	Tasks             []bool    `json:"tasks"`
	LastEvaluatedAt   time.Time `json:"last_evaluated_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	drones := p.Drones
	if drones == nil {
		drones = []int{}
	}
	asteroids := p.Asteroids
	if asteroids == nil {
		asteroids = []int{}
	}
	return Player{
		ID:                string(p.ID),
		CCC:               p.CCC,
		CS:                p.CS,
		Energy:            p.Energy,
		Drones:            drones,
		Asteroids:         asteroids,
		CargoTier:         p.CargoTier,
		CargoCCC:          p.CargoCCC,
		AsteroidResources: p.AsteroidResources,
		Tasks:             p.Tasks,
		LastEvaluatedAt:   p.LastEvaluatedAt,
		CreatedAt:         p.CreatedAt,
	}
}

// ExchangeRecord represents an exchange ledger entry
type ExchangeRecord struct {
	ID           string    `json:"id"`
	Direction    string    `json:"direction"`
	SourceAmount float64   `json:"source_amount"`
	ResultAmount float64   `json:"result_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExchangeRecordFromModel converts model.ExchangeRecord
func ExchangeRecordFromModel(r *model.ExchangeRecord) ExchangeRecord {
	return ExchangeRecord{
		ID:           r.ID,
		Direction:    string(r.Direction),
		SourceAmount: r.SourceAmount,
		ResultAmount: r.ResultAmount,
		CreatedAt:    r.CreatedAt,
	}
}

// ExchangeResponse is the response after a completed exchange
type ExchangeResponse struct {
	Player Player         `json:"player"`
	Record ExchangeRecord `json:"record"`
}

// ExchangeHistory is the response for the exchange history endpoint,
// ordered newest-first
type ExchangeHistory struct {
	Records []ExchangeRecord `json:"records"`
}

// ExchangeHistoryFromModel converts a record list
func ExchangeHistoryFromModel(records []*model.ExchangeRecord) ExchangeHistory {
	out := make([]ExchangeRecord, len(records))
	for i, r := range records {
		out[i] = ExchangeRecordFromModel(r)
	}
	return ExchangeHistory{Records: out}
}

// Drone represents a drone catalog entry
type Drone struct {
	ID           int     `json:"id"`
	Cost         float64 `json:"cost"`
	IncomePerDay float64 `json:"income_per_day"`
}

// Asteroid represents an asteroid catalog entry
type Asteroid struct {
	ID    int     `json:"id"`
	Cost  float64 `json:"cost"`
	Yield float64 `json:"yield"`
}

// CargoTier represents a cargo tier catalog entry
type CargoTier struct {
	Level       int     `json:"level"`
	Capacity    float64 `json:"capacity"`
	UpgradeCost float64 `json:"upgrade_cost"`
	AutoCollect bool    `json:"auto_collect"`
}

// DronesFromCatalog converts the drone table
func DronesFromCatalog(drones []catalog.Drone) []Drone {
	out := make([]Drone, len(drones))
	for i, d := range drones {
		out[i] = Drone{ID: d.ID, Cost: d.Cost, IncomePerDay: d.IncomePerDay}
	}
	return out
}

// AsteroidsFromCatalog converts the asteroid table
func AsteroidsFromCatalog(asteroids []catalog.Asteroid) []Asteroid {
	out := make([]Asteroid, len(asteroids))
	for i, a := range asteroids {
		out[i] = Asteroid{ID: a.ID, Cost: a.Cost, Yield: a.Yield}
	}
	return out
}

// TiersFromCatalog converts the cargo tier table
func TiersFromCatalog(tiers []catalog.CargoTier) []CargoTier {
	out := make([]CargoTier, len(tiers))
	for i, t := range tiers {
		out[i] = CargoTier{Level: t.Level, Capacity: t.Capacity, UpgradeCost: t.UpgradeCost, AutoCollect: t.AutoCollect}
	}
	return out
}
