package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/moodrecipe/api/internal/application/auth"
	"github.com/moodrecipe/api/internal/infrastructure/http/middleware"
	"github.com/moodrecipe/api/internal/infrastructure/session"
)

// AuthAPIHandlers handles authentication API requests
type AuthAPIHandlers struct {
	authService *auth.Service
	cookies     session.CookieOptions
	logger      *zap.Logger
}

// NewAuthAPIHandlers creates a new authentication API handlers instance
func NewAuthAPIHandlers(
	authService *auth.Service,
	cookies session.CookieOptions,
	logger *zap.Logger,
) *AuthAPIHandlers {
	return &AuthAPIHandlers{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request. Username also accepts the
// account email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LanguageRequest represents a language preference change
type LanguageRequest struct {
	Language string `json:"language"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Success bool        `json:"success"`
	User    interface{} `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// CurrentUserResponse represents the authenticated user payload
type CurrentUserResponse struct {
	User     interface{} `json:"user"`
	Language string      `json:"language"`
}

// Register handles POST /api/register
func (h *AuthAPIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, h.logger, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.authService.Register(r.Context(), auth.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	session.SetCookie(w, result.Session.ID, h.cookies)
	writeJSON(w, h.logger, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    result.User,
	})
}

// Login handles POST /api/login
func (h *AuthAPIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, h.logger, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.authService.Login(r.Context(), auth.LoginCommand{
		Identifier: req.Username,
		Password:   req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	session.SetCookie(w, result.Session.ID, h.cookies)
	writeJSON(w, h.logger, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    result.User,
	})
}

// Logout handles POST /api/logout
func (h *AuthAPIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	var sessionID string
	if sess != nil {
		sessionID = sess.ID
	}

	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	session.ClearCookie(w, h.cookies)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Logout successful",
	})
}

// CurrentUser handles GET /api/user
func (h *AuthAPIHandlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	result, err := h.authService.CurrentUser(r.Context(), sess)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, CurrentUserResponse{
		User:     result.User,
		Language: result.Language,
	})
}

// SetLanguage handles POST /api/language
func (h *AuthAPIHandlers) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, h.logger, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sess := middleware.SessionFromContext(r.Context())

	language, err := h.authService.SetLanguage(r.Context(), sess, req.Language)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":  true,
		"language": language,
	})
}
