package request

// TapBatchRequest is the request body for submitting a tap batch
type TapBatchRequest struct {
	PlayerID    string  `json:"player_id"`
	Clicks      int     `json:"clicks"`
	EnergyAfter int     `json:"energy_after"`
	CargoAfter  float64 `json:"cargo_after"`
}

// CollectCargoRequest is the request body for collecting cargo
type CollectCargoRequest struct {
	PlayerID string `json:"player_id"`
}

// BuyDroneRequest is the request body for buying a drone
type BuyDroneRequest struct {
	PlayerID string `json:"player_id"`
	DroneID  int    `json:"drone_id"`
}

// BuyAsteroidRequest is the request body for buying an asteroid
type BuyAsteroidRequest struct {
	PlayerID   string `json:"player_id"`
	AsteroidID int    `json:"asteroid_id"`
}

// UpgradeCargoRequest is the request body for upgrading the cargo hold
type UpgradeCargoRequest struct {
	PlayerID string `json:"player_id"`
	Level    int    `json:"level"`
}

// CompleteTaskRequest is the request body for completing a task
type CompleteTaskRequest struct {
	PlayerID string `json:"player_id"`
	TaskID   int    `json:"task_id"`
}

// ExchangeRequest is the request body for either exchange direction
type ExchangeRequest struct {
	PlayerID string  `json:"player_id"`
	Amount   float64 `json:"amount"`
}
