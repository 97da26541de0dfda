// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pranayjha5666/harsha4/internal/domain/model"
)

// PhotosDependencies defines the interface for engagement operations.
type PhotosDependencies interface {
	SubmitPhoto(ctx context.Context, imageRef, category, date string) (model.Submission, error)
	Photos(ctx context.Context, date string) ([]model.Submission, error)
	AdjustLike(ctx context.Context, id string, delta int) (model.Submission, error)
	DeletePhoto(ctx context.Context, id string) (bool, error)
}

// PhotosHandler handles photo submission requests.
type PhotosHandler struct {
	deps PhotosDependencies
}

// NewPhotosHandler creates a new photos handler.
func NewPhotosHandler(deps PhotosDependencies) *PhotosHandler {
	return &PhotosHandler{deps: deps}
}

type submitPhotoRequest struct {
	ImageRef string `json:"imageRef"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// HandleCollection handles GET/POST /api/photos requests.
func (h *PhotosHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		subs, err := h.deps.Photos(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", subs)
	case http.MethodPost:
		var req submitPhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		sub, err := h.deps.SubmitPhoto(r.Context(), req.ImageRef, req.Category, req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Photo submitted", sub)
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles /api/photos/{id}, /api/photos/{id}/like and
// /api/photos/{id}/dislike requests.
func (h *PhotosHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/photos/")
	id, action, _ := strings.Cut(path, "/")
	if id == "" || strings.Contains(action, "/") {
		writeBadRequest(w, "invalid photo path")
		return
	}

	switch {
	case r.Method == http.MethodPost && action == "like":
		h.adjust(w, r, id, 1)
	case r.Method == http.MethodPost && action == "dislike":
		h.adjust(w, r, id, -1)
	case r.Method == http.MethodDelete && action == "":
		released, err := h.deps.DeletePhoto(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		msg := "Photo deleted"
		if !released {
			msg = "Photo deleted; media reference not released"
		}
		writeSuccess(w, http.StatusOK, msg, nil)
	default:
		http.NotFound(w, r)
	}
}

func (h *PhotosHandler) adjust(w http.ResponseWriter, r *http.Request, id string, delta int) {
	sub, err := h.deps.AdjustLike(r.Context(), id, delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Like count updated", sub)
}
