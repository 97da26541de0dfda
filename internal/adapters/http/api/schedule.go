// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pranayjha5666/harsha4/internal/domain/model"
)

// ScheduleDependencies defines the interface for schedule operations.
type ScheduleDependencies interface {
	AddGame(ctx context.Context, game model.Game) (model.Game, error)
	FindGames(ctx context.Context, date, team string) ([]model.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// ScheduleHandler handles game schedule requests.
type ScheduleHandler struct {
	deps ScheduleDependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps ScheduleDependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

type createGameRequest struct {
	TeamA    string `json:"teamA"`
	TeamB    string `json:"teamB"`
	Venue    string `json:"venue"`
	GameName string `json:"gameName"`
	Winner   string `json:"winner"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// HandleCollection handles GET/POST /api/schedule requests.
// GET requires ?date= and accepts an optional ?team= filter.
func (h *ScheduleHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		games, err := h.deps.FindGames(r.Context(), q.Get("date"), q.Get("team"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", games)
	case http.MethodPost:
		var req createGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		game, err := h.deps.AddGame(r.Context(), model.Game{
			TeamA:    req.TeamA,
			TeamB:    req.TeamB,
			Venue:    req.Venue,
			GameName: req.GameName,
			Winner:   req.Winner,
			Date:     req.Date,
			Time:     req.Time,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Game scheduled", game)
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles DELETE /api/schedule/{id} requests.
func (h *ScheduleHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/schedule/")
	if id == "" || strings.Contains(id, "/") {
		writeBadRequest(w, "invalid schedule path")
		return
	}
	if err := h.deps.DeleteGame(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Game deleted", nil)
}
