package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stardrift-game/stardrift/internal/api/request"
	"github.com/stardrift-game/stardrift/internal/api/response"
	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/services/ledger"
)

// EconomyHandler handles purchases, upgrades, tasks, cargo collection and
// tap batches
type EconomyHandler struct {
	ledger *ledger.Controller
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(ledgerController *ledger.Controller) *EconomyHandler {
	return &EconomyHandler{
		ledger: ledgerController,
	}
}

// TapBatch handles POST /api/v1/tap-batch
func (h *EconomyHandler) TapBatch(w http.ResponseWriter, r *http.Request) {
	var req request.TapBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	report := model.TapReport{
		Clicks:      req.Clicks,
		EnergyAfter: req.EnergyAfter,
		CargoAfter:  req.CargoAfter,
	}
	player, err := h.ledger.CommitTapBatch(r.Context(), model.PlayerID(req.PlayerID), report)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// CollectCargo handles POST /api/v1/collect-cargo
func (h *EconomyHandler) CollectCargo(w http.ResponseWriter, r *http.Request) {
	var req request.CollectCargoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	player, err := h.ledger.CollectCargo(r.Context(), model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// BuyDrone handles POST /api/v1/buy-drone
func (h *EconomyHandler) BuyDrone(w http.ResponseWriter, r *http.Request) {
	var req request.BuyDroneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	player, err := h.ledger.BuyDrone(r.Context(), model.PlayerID(req.PlayerID), req.DroneID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// BuyAsteroid handles POST /api/v1/buy-asteroid
func (h *EconomyHandler) BuyAsteroid(w http.ResponseWriter, r *http.Request) {
	var req request.BuyAsteroidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	player, err := h.ledger.BuyAsteroid(r.Context(), model.PlayerID(req.PlayerID), req.AsteroidID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// UpgradeCargo handles POST /api/v1/upgrade-cargo
func (h *EconomyHandler) UpgradeCargo(w http.ResponseWriter, r *http.Request) {
	var req request.UpgradeCargoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	player, err := h.ledger.UpgradeCargo(r.Context(), model.PlayerID(req.PlayerID), req.Level)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// CompleteTask handles POST /api/v1/complete-task
func (h *EconomyHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	player, err := h.ledger.CompleteTask(r.Context(), model.PlayerID(req.PlayerID), req.TaskID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
