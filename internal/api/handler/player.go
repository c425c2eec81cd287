package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stardrift-game/stardrift/internal/api/response"
	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/services/ledger"
)

// PlayerHandler handles player state endpoints
type PlayerHandler struct {
	ledger *ledger.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledgerController *ledger.Controller) *PlayerHandler {
	return &PlayerHandler{
		ledger: ledgerController,
	}
}

// Get handles GET /api/v1/players/{id}
//
// Reading a player advances idle accrual first, so the returned state is
// current as of this request. Unknown players are created lazily with
// default state.
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		WriteError(w, NewInvalidRequestError("player id is required"))
		return
	}

	player, err := h.ledger.GetPlayer(r.Context(), model.PlayerID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
