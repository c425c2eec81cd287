package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Economy errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientCargo = errors.New("insufficient cargo")
	ErrAlreadyOwned      = errors.New("item is already owned")
	ErrAlreadyCompleted  = errors.New("task is already completed")
	ErrLockedTier        = errors.New("previous tier must be owned first")
	ErrInvalidLevel      = errors.New("invalid cargo level")
	ErrInvalidAmount     = errors.New("amount must be positive")

	// Anti-cheat errors
	ErrSuspectedCheating = errors.New("tap batch failed plausibility checks")

	// Catalog errors
	ErrUnknownDrone     = errors.New("unknown drone")
	ErrUnknownAsteroid  = errors.New("unknown asteroid")
	ErrUnknownCargoTier = errors.New("unknown cargo tier")
	ErrUnknownTask      = errors.New("unknown task")

	// Storage errors. Wrapped around driver failures so callers can
	// distinguish retryable persistence outages from business rejections.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
