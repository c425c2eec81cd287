package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case ExchangeResult:
		o.printExchangeResult(v)
	case ExchangeHistory:
		o.printExchangeHistory(v)
	case []Drone:
		o.printDrones(v)
	case []Asteroid:
		o.printAsteroids(v)
	case []CargoTier:
		o.printCargoTiers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// ExchangeRecord response type
type ExchangeRecord struct {
	ID           string    `json:"id"`
	Direction    string    `json:"direction"`
	SourceAmount float64   `json:"source_amount"`
	ResultAmount float64   `json:"result_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExchangeResult combines the updated player with the exchange record
type ExchangeResult struct {
	Player Player         `json:"player"`
	Record ExchangeRecord `json:"record"`
}

// ExchangeHistory response type
type ExchangeHistory struct {
	Records []ExchangeRecord `json:"records"`
}

// Drone catalog response type
type Drone struct {
	ID           int     `json:"id"`
	Cost         float64 `json:"cost"`
	IncomePerDay float64 `json:"income_per_day"`
}

// Asteroid catalog response type
type Asteroid struct {
	ID    int     `json:"id"`
	Cost  float64 `json:"cost"`
	Yield float64 `json:"yield"`
}

// CargoTier catalog response type
type CargoTier struct {
	Level       int     `json:"level"`
	Capacity    float64 `json:"capacity"`
	UpgradeCost float64 `json:"upgrade_cost"`
	AutoCollect bool    `json:"auto_collect"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.ID)
	fmt.Printf("CCC: %.2f\n", p.CCC)
	fmt.Printf("CS: %.2f\n", p.CS)
	fmt.Printf("Energy: %d\n", p.Energy)
	fmt.Printf("Cargo: %.2f (tier %d)\n", p.CargoCCC, p.CargoTier)
	fmt.Printf("Asteroid resources: %.2f\n", p.AsteroidResources)
	fmt.Printf("Drones: %v\n", p.Drones)
	fmt.Printf("Asteroids: %v\n", p.Asteroids)

	completed := 0
	for _, done := range p.Tasks {
		if done {
			completed++
		}
	}
	fmt.Printf("Tasks: %d/%d\n", completed, len(p.Tasks))
}

func (o *Output) printExchangeResult(r ExchangeResult) {
	fmt.Printf("Exchanged %.2f -> %.2f (%s)\n", r.Record.SourceAmount, r.Record.ResultAmount, r.Record.Direction)
	fmt.Printf("Balances: %.2f CCC, %.2f CS\n", r.Player.CCC, r.Player.CS)
}

func (o *Output) printExchangeHistory(h ExchangeHistory) {
	if len(h.Records) == 0 {
		fmt.Println("No exchanges yet")
		return
	}
	fmt.Printf("Exchanges (%d):\n", len(h.Records))
	for _, r := range h.Records {
		fmt.Printf("  %s  %-9s  %.2f -> %.2f\n",
			r.CreatedAt.Format(time.RFC3339), r.Direction, r.SourceAmount, r.ResultAmount)
	}
}

func (o *Output) printDrones(drones []Drone) {
	fmt.Println("ID   Cost (CS)   Income (CCC/day)")
	for _, d := range drones {
		fmt.Printf("%-4d %-11.0f %.0f\n", d.ID, d.Cost, d.IncomePerDay)
	}
}

func (o *Output) printAsteroids(asteroids []Asteroid) {
	fmt.Println("ID   Cost (CS)   Yield (CCC)")
	for _, a := range asteroids {
		fmt.Printf("%-4d %-11.0f %.0f\n", a.ID, a.Cost, a.Yield)
	}
}

func (o *Output) printCargoTiers(tiers []CargoTier) {
	fmt.Println("Level   Capacity   Cost (CS)   Auto-collect")
	for _, t := range tiers {
		auto := "no"
		if t.AutoCollect {
			auto = "yes"
		}
		capacity := fmt.Sprintf("%.0f", t.Capacity)
		if t.AutoCollect {
			capacity = "-"
		}
		fmt.Printf("%-7d %-10s %-11.0f %s\n", t.Level, capacity, t.UpgradeCost, auto)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
