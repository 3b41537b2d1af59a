package handler

import (
	"encoding/json"
	"net/http"

	"leo-furniture-api/internal/middleware"
	"leo-furniture-api/internal/service"
	"leo-furniture-api/pkg/apierror"
	"leo-furniture-api/pkg/response"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	user, err := h.authService.Register(r.Context(), in)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, map[string]interface{}{"user": user})
}

// TokenResponse is the login response body.
type TokenResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	token, err := h.authService.Login(r.Context(), in)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, TokenResponse{Token: token})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	if err := h.authService.Logout(r.Context(), claims); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]string{"status": "logged_out"})
}
