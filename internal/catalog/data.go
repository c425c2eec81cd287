package catalog

// EndlessYield stands in for the final asteroid's unbounded resource pool.
// It is large enough to outlast any realistic play session while keeping
// player state representable in every storage backend.
const EndlessYield = 1e15

// droneTable lists the 15 drone tiers. Costs are CS, incomes CCC per day.
var droneTable = []Drone{
	{ID: 1, Cost: 1, IncomePerDay: 96},
	{ID: 2, Cost: 2, IncomePerDay: 150},
	{ID: 3, Cost: 3, IncomePerDay: 224},
	{ID: 4, Cost: 5, IncomePerDay: 330},
	{ID: 5, Cost: 7, IncomePerDay: 472},
	{ID: 6, Cost: 10, IncomePerDay: 660},
	{ID: 7, Cost: 14, IncomePerDay: 905},
	{ID: 8, Cost: 19, IncomePerDay: 1220},
	{ID: 9, Cost: 26, IncomePerDay: 1625},
	{ID: 10, Cost: 35, IncomePerDay: 2140},
	{ID: 11, Cost: 47, IncomePerDay: 2790},
	{ID: 12, Cost: 62, IncomePerDay: 3610},
	{ID: 13, Cost: 81, IncomePerDay: 4640},
	{ID: 14, Cost: 104, IncomePerDay: 5500},
	{ID: 15, Cost: 130, IncomePerDay: 6595},
}

// asteroidTable lists the 13 asteroid tiers. Costs are CS, yields CCC.
// The final asteroid is effectively inexhaustible.
var asteroidTable = []Asteroid{
	{ID: 1, Cost: 4, Yield: 1600},
	{ID: 2, Cost: 8, Yield: 3000},
	{ID: 3, Cost: 14, Yield: 5400},
	{ID: 4, Cost: 24, Yield: 9500},
	{ID: 5, Cost: 38, Yield: 16500},
	{ID: 6, Cost: 58, Yield: 28000},
	{ID: 7, Cost: 86, Yield: 47000},
	{ID: 8, Cost: 124, Yield: 78000},
	{ID: 9, Cost: 175, Yield: 128000},
	{ID: 10, Cost: 242, Yield: 208000},
	{ID: 11, Cost: 330, Yield: 335000},
	{ID: 12, Cost: 430, Yield: 535000},
	{ID: 13, Cost: 500, Yield: EndlessYield},
}

// cargoTierTable lists the 5 cargo hold levels. UpgradeCost is the CS price
// to reach that level; level 1 is the starting hold. The top tier has no
// capacity limit and auto-collects in batches of 100.
var cargoTierTable = []CargoTier{
	{Level: 1, Capacity: 50, UpgradeCost: 0},
	{Level: 2, Capacity: 200, UpgradeCost: 5},
	{Level: 3, Capacity: 2000, UpgradeCost: 25},
	{Level: 4, Capacity: 20000, UpgradeCost: 100},
	{Level: 5, Capacity: 0, UpgradeCost: 250, AutoCollect: true},
}
