package handler

import (
	"errors"
	"net/http"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /auth/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.AuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsTaken) {
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleSignin handles POST /auth/signin requests.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req model.AuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Signin(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
