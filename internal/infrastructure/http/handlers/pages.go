package handlers

import (
	"embed"
	"net/http"

	"go.uber.org/zap"

	"github.com/moodrecipe/api/internal/infrastructure/http/middleware"
)

//go:embed static
var staticFS embed.FS

// PageHandlers serves the embedded HTML pages with the session gate:
// authenticated users are pushed to the dashboard, everyone else to login.
type PageHandlers struct {
	logger *zap.Logger
}

// NewPageHandlers creates a new page handlers instance
func NewPageHandlers(logger *zap.Logger) *PageHandlers {
	return &PageHandlers{logger: logger}
}

// Home handles GET /. Authenticated sessions land on the dashboard.
func (h *PageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticated(w, r) {
		return
	}
	h.servePage(w, "static/login.html")
}

// Login handles GET /login
func (h *PageHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticated(w, r) {
		return
	}
	h.servePage(w, "static/login.html")
}

// Register handles GET /register
func (h *PageHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticated(w, r) {
		return
	}
	h.servePage(w, "static/register.html")
}

// Dashboard handles GET /dashboard, redirecting anonymous visitors to login
func (h *PageHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if !sess.Authenticated() {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.servePage(w, "static/dashboard.html")
}

func (h *PageHandlers) redirectAuthenticated(w http.ResponseWriter, r *http.Request) bool {
	sess := middleware.SessionFromContext(r.Context())
	if sess.Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return true
	}
	return false
}

func (h *PageHandlers) servePage(w http.ResponseWriter, name string) {
	page, err := staticFS.ReadFile(name)
	if err != nil {
		h.logger.Error("Failed to read embedded page", zap.String("page", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
