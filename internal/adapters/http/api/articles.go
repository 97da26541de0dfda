// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pranayjha5666/harsha4/internal/domain/model"
)

// dateOnly is the accepted calendar-date layout for article queries.
const dateOnly = "2006-01-02"

// ArticlesDependencies defines the interface for article operations.
type ArticlesDependencies interface {
	AddArticle(ctx context.Context, department, body string, recordDate time.Time) (model.Article, error)
	ArticlesOn(ctx context.Context, day time.Time) ([]model.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// ArticlesHandler handles article requests.
type ArticlesHandler struct {
	deps ArticlesDependencies
}

// NewArticlesHandler creates a new articles handler.
func NewArticlesHandler(deps ArticlesDependencies) *ArticlesHandler {
	return &ArticlesHandler{deps: deps}
}

type createArticleRequest struct {
	Department string `json:"department"`
	Body       string `json:"body"`
	RecordDate string `json:"recordDate"`
}

// parseDate accepts either a full RFC3339 timestamp or a calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnly, s)
}

// HandleCollection handles GET/POST /api/articles requests.
// GET requires ?date=YYYY-MM-DD and returns that UTC day's articles.
func (h *ArticlesHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		raw := r.URL.Query().Get("date")
		if raw == "" {
			writeBadRequest(w, "date is required")
			return
		}
		day, err := parseDate(raw)
		if err != nil {
			writeBadRequest(w, "invalid date; must be YYYY-MM-DD or RFC3339")
			return
		}
		articles, err := h.deps.ArticlesOn(r.Context(), day)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", articles)
	case http.MethodPost:
		var req createArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if req.RecordDate == "" {
			writeBadRequest(w, "recordDate is required")
			return
		}
		recordDate, err := parseDate(req.RecordDate)
		if err != nil {
			writeBadRequest(w, "invalid recordDate; must be YYYY-MM-DD or RFC3339")
			return
		}
		article, err := h.deps.AddArticle(r.Context(), req.Department, req.Body, recordDate)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Article created", article)
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles DELETE /api/articles/{id} requests.
func (h *ArticlesHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/articles/")
	if id == "" || strings.Contains(id, "/") {
		writeBadRequest(w, "invalid article path")
		return
	}
	if err := h.deps.DeleteArticle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Article deleted", nil)
}
