// Package server wires the HTTP surface: routing, authentication, request
// logging and lifecycle. All game semantics live behind the engine; the
// server only translates requests into engine calls.
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

	"github.com/forgeline/LegendaryForge_Go/internal/database"
	"github.com/forgeline/LegendaryForge_Go/internal/game"
	"github.com/forgeline/LegendaryForge_Go/internal/handler"
	"github.com/forgeline/LegendaryForge_Go/internal/logger"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
	"github.com/forgeline/LegendaryForge_Go/internal/save"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	engine     *game.Engine
	saver      save.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool database.Pool, engine *game.Engine, saver save.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health and deployment endpoints (unversioned, public)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	stateHandler := handler.NewStateHandler(engine)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", stateHandler.HandleGetState)

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(engine))
			r.Post("/sell", handler.HandleSellItem(engine))
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", handler.HandleGetEquipment(engine))
			r.Post("/equip", handler.HandleEquipItem(engine))
			r.Post("/unequip", handler.HandleUnequipSlot(engine))
		})

		r.Get("/recipes", handler.HandleGetRecipes(engine))
		r.Route("/craft", func(r chi.Router) {
			r.Post("/start", handler.HandleStartCraft(engine))
			r.Post("/finish", handler.HandleFinishCraft(engine))
			r.Post("/cancel", handler.HandleCancelCraft(engine))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handler.HandleGetOrders(engine))
			r.Post("/generate", handler.HandleGenerateOrder(engine))
			r.Post("/deliver", handler.HandleDeliverOrder(engine))
			r.Post("/haggle", handler.HandleHaggleOrder(engine))
			r.Post("/cancel", handler.HandleCancelOrder(engine))
		})

		r.Route("/expeditions", func(r chi.Router) {
			r.Get("/", handler.HandleGetExpeditions(engine))
			r.Post("/dispatch", handler.HandleDispatchExpedition(engine))
		})

		r.Route("/mine", func(r chi.Router) {
			r.Get("/", handler.HandleGetMine(engine))
			r.Post("/enter", handler.HandleEnterMine(engine))
			r.Post("/battle", handler.HandleBattle(engine))
			r.Post("/collect", handler.HandleMining(engine))
		})

		r.Route("/event", func(r chi.Router) {
			r.Get("/", handler.HandleGetEvent(engine))
			r.Post("/choose", handler.HandleChooseCard(engine))
			r.Post("/dismiss", handler.HandleDismissEvent(engine))
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", handler.HandleGetStaff(engine))
			r.Post("/hire", handler.HandleHireStaff(engine))
			r.Post("/fire", handler.HandleFireStaff(engine))
			r.Post("/train", handler.HandleTrainStaff(engine))
		})

		r.Route("/upgrades", func(r chi.Router) {
			r.Get("/", handler.HandleGetUpgrades(engine))
			r.Post("/purchase", handler.HandlePurchaseUpgrade(engine))
		})

		r.Post("/day/advance", handler.HandleAdvanceDay(engine))
		r.Post("/save", handler.HandleSaveGame(saver))
		r.Post("/restore", handler.HandleRestoreGame(saver))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
		engine: engine,
		saver:  saver,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metrics scrapes would drown the log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
