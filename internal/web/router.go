package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/session"
	"github.com/auranode/auranode/internal/web/handler"
	"github.com/auranode/auranode/internal/web/middleware"
)

// RouterConfig holds configuration for the web router.
type RouterConfig struct {
	Logger   *slog.Logger
	Accounts *account.Service
	Codec    *session.Codec
	// StaticDir is the path to static assets; empty disables them.
	StaticDir string
}

// NewRouter creates the web router with all routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	flashMiddleware := middleware.Flash()
	requireAuth := middleware.RequireAuth(cfg.Accounts, cfg.Codec)
	optionalAuth := middleware.OptionalAuth(cfg.Accounts, cfg.Codec)

	homeHandler := handler.NewHomeHandler()
	pricingHandler := handler.NewPricingHandler()
	accountHandler := handler.NewAccountHandler(cfg.Accounts, cfg.Codec)
	dashboardHandler := handler.NewDashboardHandler(cfg.Accounts)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for nav state)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuth)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/contact", homeHandler.Contact).Methods(http.MethodGet)
	public.HandleFunc("/pricing", pricingHandler.Index).Methods(http.MethodGet)
	public.HandleFunc("/pricing/{game}", pricingHandler.Game).Methods(http.MethodGet)
	public.HandleFunc("/register", accountHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/register", accountHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/login", accountHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", accountHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", accountHandler.Logout).Methods(http.MethodGet)

	// Protected routes (require a session)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(requireAuth)
	protected.HandleFunc("/dashboard", dashboardHandler.View).Methods(http.MethodGet)

	return r
}
