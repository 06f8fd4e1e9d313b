package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"salina-hive/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a HiveUseCase to execute ledger operations and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc     port.HiveUseCase
	logger  *slog.Logger
	router  chi.Router
	metrics http.Handler
	faucet  bool
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(hd *Handler) { hd.metrics = h }
}

// WithFaucet enables POST /api/v1/accounts/{address}/airdrop.
func WithFaucet(enabled bool) Option {
	return func(hd *Handler) { hd.faucet = enabled }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.HiveUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(RequestID, middleware.RealIP, h.accessLog, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/platform", func(r chi.Router) {
			r.Post("/", h.handleInitializePlatform)
			r.Get("/", h.handleGetPlatform)
			r.Patch("/", h.handleUpdatePlatform)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{cid}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/donations", h.handleDonate)
				r.Get("/donations", h.handleListDonations)
				r.Post("/withdraw", h.handleWithdraw)
			})
		})
		r.Route("/accounts/{address}", func(r chi.Router) {
			r.Get("/", h.handleBalance)
			if h.faucet {
				r.Post("/airdrop", h.handleAirdrop)
			}
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
