// Package catalog holds the immutable drone, asteroid and cargo-tier tables.
// The tables are compiled-in configuration, loaded once at startup and
// referenced by ID from player state. Lookups are keyed, never positional,
// so an unknown ID is a distinct error rather than an out-of-bounds access.
package catalog

import "github.com/stardrift-game/stardrift/internal/model"

// Drone is an owned unit contributing daily CCC income
type Drone struct {
	ID           int
	Cost         float64
	IncomePerDay float64
}

// Asteroid is an owned resource deposit mined by drones
type Asteroid struct {
	ID    int
	Cost  float64
	Yield float64
}

// CargoTier is a capacity gate on accrued-but-uncollected CCC
type CargoTier struct {
	Level       int
	Capacity    float64
	UpgradeCost float64
	AutoCollect bool
}

// Catalog provides keyed access to the static game tables
type Catalog struct {
	drones    map[int]Drone
	asteroids map[int]Asteroid
	tiers     map[int]CargoTier
}

// Default builds the catalog from the compiled-in tables
func Default() *Catalog {
	c := &Catalog{
		drones:    make(map[int]Drone, len(droneTable)),
		asteroids: make(map[int]Asteroid, len(asteroidTable)),
		tiers:     make(map[int]CargoTier, len(cargoTierTable)),
	}
	for _, d := range droneTable {
		c.drones[d.ID] = d
	}
	for _, a := range asteroidTable {
		c.asteroids[a.ID] = a
	}
	for _, t := range cargoTierTable {
		c.tiers[t.Level] = t
	}
	return c
}

// Drone looks up a drone by ID
func (c *Catalog) Drone(id int) (Drone, error) {
	d, ok := c.drones[id]
	if !ok {
		return Drone{}, model.ErrUnknownDrone
	}
	return d, nil
}

// Asteroid looks up an asteroid by ID
func (c *Catalog) Asteroid(id int) (Asteroid, error) {
	a, ok := c.asteroids[id]
	if !ok {
		return Asteroid{}, model.ErrUnknownAsteroid
	}
	return a, nil
}

// Tier looks up a cargo tier by level
func (c *Catalog) Tier(level int) (CargoTier, error) {
	t, ok := c.tiers[level]
	if !ok {
		return CargoTier{}, model.ErrUnknownCargoTier
	}
	return t, nil
}

// MaxTier returns the highest cargo tier level
func (c *Catalog) MaxTier() int {
	return len(cargoTierTable)
}

// DailyIncome sums the daily CCC income across the given drone IDs
func (c *Catalog) DailyIncome(droneIDs []int) (float64, error) {
	var total float64
	for _, id := range droneIDs {
		d, err := c.Drone(id)
		if err != nil {
			return 0, err
		}
		total += d.IncomePerDay
	}
	return total, nil
}

// Drones returns the drone table in ID order
func (c *Catalog) Drones() []Drone {
	out := make([]Drone, len(droneTable))
	copy(out, droneTable)
	return out
}

// Asteroids returns the asteroid table in ID order
func (c *Catalog) Asteroids() []Asteroid {
	out := make([]Asteroid, len(asteroidTable))
	copy(out, asteroidTable)
	return out
}

// Tiers returns the cargo tier table in level order
func (c *Catalog) Tiers() []CargoTier {
	out := make([]CargoTier, len(cargoTierTable))
	copy(out, cargoTierTable)
	return out
}
