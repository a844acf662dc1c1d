// Package server wires the HTTP surface: middleware stack, versioned
// API routes, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/knedy989-code/Cookie-RNG/internal/codes"
	"github.com/knedy989-code/Cookie-RNG/internal/crate"
	"github.com/knedy989-code/Cookie-RNG/internal/database"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/handler"
	"github.com/knedy989-code/Cookie-RNG/internal/inventory"
	"github.com/knedy989-code/Cookie-RNG/internal/item"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/metrics"
	"github.com/knedy989-code/Cookie-RNG/internal/oracle"
	"github.com/knedy989-code/Cookie-RNG/internal/progression"
	"github.com/knedy989-code/Cookie-RNG/internal/quest"
	"github.com/knedy989-code/Cookie-RNG/internal/shop"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// Services bundles everything the router needs.
type Services struct {
	Store       *state.Store
	Economy     economy.Service
	Item        item.Service
	Inventory   inventory.Service
	Crate       crate.Service
	Shop        shop.Service
	Progression progression.Service
	Quest       quest.Service
	Oracle      oracle.Service
	Codes       codes.Service
}

// Server is the HTTP front of the game.
type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer builds the router and wraps it in an http.Server.
func NewServer(port int, apiKey string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	r.Use(apiKeyMiddleware(apiKey))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(svcs.Store))
		r.Post("/click", handler.HandleClick(svcs.Economy))
		r.Post("/settings/sound", handler.HandleToggleSound(svcs.Store))

		r.Get("/pools", handler.HandleGetPools(svcs.Item))
		r.Post("/roll", handler.HandleRoll(svcs.Item))
		r.Post("/roll/oracle", handler.HandleOracleRoll(svcs.Oracle))

		r.Route("/crates", func(r chi.Router) {
			r.Get("/", handler.HandleGetCrates(svcs.Crate))
			r.Post("/open", handler.HandleOpenCrate(svcs.Crate))
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/items", handler.HandleGetShopItems(svcs.Shop))
			r.Post("/buy", handler.HandleBuyItem(svcs.Shop))
		})

		r.Route("/bundle", func(r chi.Router) {
			r.Get("/", handler.HandleGetBundle(svcs.Shop))
			r.Post("/buy", handler.HandleBuyBundle(svcs.Shop))
		})

		r.Route("/upgrades", func(r chi.Router) {
			r.Get("/", handler.HandleGetUpgrades(svcs.Progression))
			r.Post("/buy", handler.HandleBuyUpgrade(svcs.Progression))
		})
		r.Post("/ascend", handler.HandleAscend(svcs.Progression))

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", handler.HandleGetQuests(svcs.Quest))
			r.Post("/claim", handler.HandleClaimQuest(svcs.Quest))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/equip", handler.HandleEquipCookie(svcs.Inventory))
			r.Post("/sell", handler.HandleSellCookie(svcs.Inventory))
		})

		r.Route("/codes", func(r chi.Router) {
			r.Post("/redeem", handler.HandleRedeemCode(svcs.Codes))
			r.Post("/spawn-chrono", handler.HandleSpawnChrono(svcs.Codes))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// Start starts the server.
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// isPublicPath reports whether a path bypasses auth and request logging.
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics") ||
		strings.HasPrefix(path, "/version")
}

// apiKeyMiddleware enforces the X-API-Key header when a key is
// configured. An empty key disables auth entirely.
func apiKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if r.Header.Get("X-API-Key") != apiKey {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags every request with a request ID and logs its
// lifecycle. Health and metrics endpoints stay quiet.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}
