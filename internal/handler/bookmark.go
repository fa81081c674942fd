package handler

import (
	"errors"
	"net/http"

	"github.com/linkstash/linkstash-go/internal/middleware"
	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/service"
)

// BookmarkHandler handles HTTP requests for the caller's bookmarks.
type BookmarkHandler struct {
	service *service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: svc}
}

// HandleList handles GET /bookmarks requests.
func (h *BookmarkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	bookmarks, err := h.service.List(r.Context(), userID)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookmarks)
}

// HandleCreate handles POST /bookmarks requests.
func (h *BookmarkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req model.CreateBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// HandleGet handles GET /bookmarks/{id} requests.
func (h *BookmarkHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	id, err := bookmarkID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	b, err := h.service.GetByID(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// HandleEdit handles PATCH /bookmarks/{id} requests.
func (h *BookmarkHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	id, err := bookmarkID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var req model.EditBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.service.EditByID(r.Context(), userID, id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// HandleDelete handles DELETE /bookmarks/{id} requests.
func (h *BookmarkHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	id, err := bookmarkID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.service.DeleteByID(r.Context(), userID, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookmarkHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrBookmarkNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}
	internalError(w, r, err)
}
