// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pranayjha5666/harsha4/internal/domain/model"
)

// LedgerDependencies defines the interface for ledger operations.
type LedgerDependencies interface {
	Scores(ctx context.Context, ledger model.Ledger) ([]model.ScoreEntry, error)
	SetScore(ctx context.Context, ledger model.Ledger, name string, score int) (model.ScoreEntry, error)
}

// LedgerHandler serves both score ledgers; the ledger is fixed per route.
type LedgerHandler struct {
	deps LedgerDependencies
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(deps LedgerDependencies) *LedgerHandler {
	return &LedgerHandler{deps: deps}
}

// updateScoreRequest mirrors the update-score request body. Score is a
// pointer so a missing field is distinguishable from zero.
type updateScoreRequest struct {
	Name  string `json:"name"`
	Score *int   `json:"score"`
}

// HandleList handles GET /api/{ledger} requests.
func (h *LedgerHandler) HandleList(ledger model.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		entries, err := h.deps.Scores(r.Context(), ledger)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", entries)
	}
}

// HandleUpdateScore handles POST /api/{ledger}/update-score requests.
func (h *LedgerHandler) HandleUpdateScore(ledger model.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req updateScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if req.Score == nil {
			writeBadRequest(w, "score is required")
			return
		}
		entry, err := h.deps.SetScore(r.Context(), ledger, req.Name, *req.Score)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Score updated", entry)
	}
}
