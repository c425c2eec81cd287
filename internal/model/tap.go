package model

// TapReport is a client-submitted batch of manual taps. The server does not
// see individual taps; it validates the reported deltas for plausibility
// before committing them.
type TapReport struct {
	// Clicks is the number of taps performed since the last accepted batch
	Clicks int
	// EnergyAfter is the client's energy after spending one per tap
	EnergyAfter int
	// CargoAfter is the client's cargo balance after crediting tap yield
	CargoAfter float64
}
