package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stardrift-game/stardrift/internal/api/request"
	"github.com/stardrift-game/stardrift/internal/api/response"
	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/services/ledger"
)

// ExchangeHandler handles currency exchange endpoints
type ExchangeHandler struct {
	ledger *ledger.Controller
}

// NewExchangeHandler creates a new exchange handler
func NewExchangeHandler(ledgerController *ledger.Controller) *ExchangeHandler {
	return &ExchangeHandler{
		ledger: ledgerController,
	}
}

// CccToCs handles POST /api/v1/exchange/ccc-to-cs
func (h *ExchangeHandler) CccToCs(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, h.ledger.ExchangeCccToCs)
}

// CsToCcc handles POST /api/v1/exchange/cs-to-ccc
func (h *ExchangeHandler) CsToCcc(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, h.ledger.ExchangeCsToCcc)
}

// History handles GET /api/v1/players/{id}/exchanges
func (h *ExchangeHandler) History(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		WriteError(w, NewInvalidRequestError("player id is required"))
		return
	}

	records, err := h.ledger.ExchangeHistory(r.Context(), model.PlayerID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExchangeHistoryFromModel(records))
}

type exchangeFunc func(ctx context.Context, id model.PlayerID, amount float64) (*model.Player, *model.ExchangeRecord, error)

func (h *ExchangeHandler) convert(w http.ResponseWriter, r *http.Request, fn exchangeFunc) {
	var req request.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	if req.Amount <= 0 {
		WriteError(w, NewInvalidRequestError("amount must be positive"))
		return
	}

	player, record, err := fn(r.Context(), model.PlayerID(req.PlayerID), req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExchangeResponse{
		Player: response.PlayerFromModel(player),
		Record: response.ExchangeRecordFromModel(record),
	})
}
