package handler

import (
	"errors"
	"net/http"

	"github.com/linkstash/linkstash-go/internal/middleware"
	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/service"
)

// UserHandler handles HTTP requests for the caller's profile.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleMe handles GET /users/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	resp, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		// A valid token for a user that no longer exists.
		if errors.Is(err, service.ErrUserNotFound) {
			unauthorized(w)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleEdit handles PATCH /users requests.
func (h *UserHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req model.EditUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.EditProfile(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			unauthorized(w)
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
