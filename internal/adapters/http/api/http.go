// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	service "github.com/pranayjha5666/harsha4/internal/app"
	"github.com/pranayjha5666/harsha4/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Scores(ctx context.Context, ledger model.Ledger) ([]model.ScoreEntry, error)
	SetScore(ctx context.Context, ledger model.Ledger, name string, score int) (model.ScoreEntry, error)

	SubmitPhoto(ctx context.Context, imageRef, category, date string) (model.Submission, error)
	Photos(ctx context.Context, date string) ([]model.Submission, error)
	AdjustLike(ctx context.Context, id string, delta int) (model.Submission, error)
	DeletePhoto(ctx context.Context, id string) (bool, error)

	AddGame(ctx context.Context, game model.Game) (model.Game, error)
	FindGames(ctx context.Context, date, team string) ([]model.Game, error)
	DeleteGame(ctx context.Context, id string) error

	AddArticle(ctx context.Context, department, body string, recordDate time.Time) (model.Article, error)
	ArticlesOn(ctx context.Context, day time.Time) ([]model.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	ledgerHandler   *LedgerHandler
	photosHandler   *PhotosHandler
	scheduleHandler *ScheduleHandler
	articlesHandler *ArticlesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		ledgerHandler:   NewLedgerHandler(deps),
		photosHandler:   NewPhotosHandler(deps),
		scheduleHandler: NewScheduleHandler(deps),
		articlesHandler: NewArticlesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/api/leaderboard", MetricsMiddleware(s.ledgerHandler.HandleList(model.LedgerCompetition), "leaderboard"))
	mux.HandleFunc("/api/leaderboard/update-score", MetricsMiddleware(s.ledgerHandler.HandleUpdateScore(model.LedgerCompetition), "leaderboard_update"))
	mux.HandleFunc("/api/enthusiasm", MetricsMiddleware(s.ledgerHandler.HandleList(model.LedgerEnthusiasm), "enthusiasm"))
	mux.HandleFunc("/api/enthusiasm/update-score", MetricsMiddleware(s.ledgerHandler.HandleUpdateScore(model.LedgerEnthusiasm), "enthusiasm_update"))

	mux.HandleFunc("/api/photos", MetricsMiddleware(s.photosHandler.HandleCollection, "photos"))
	mux.HandleFunc("/api/photos/", MetricsMiddleware(s.photosHandler.HandleItem, "photos_item"))

	mux.HandleFunc("/api/schedule", MetricsMiddleware(s.scheduleHandler.HandleCollection, "schedule"))
	mux.HandleFunc("/api/schedule/", MetricsMiddleware(s.scheduleHandler.HandleItem, "schedule_item"))

	mux.HandleFunc("/api/articles", MetricsMiddleware(s.articlesHandler.HandleCollection, "articles"))
	mux.HandleFunc("/api/articles/", MetricsMiddleware(s.articlesHandler.HandleItem, "articles_item"))
}

// successResponse is the success envelope the transport layer serializes.
type successResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// errorResponse is the failure envelope.
type errorResponse struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, message string, payload interface{}) {
	writeJSON(w, status, successResponse{Status: true, Message: message, Payload: payload})
}

// writeError maps core error kinds onto response codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, errorResponse{Status: false, Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Status: false, Error: msg})
}
