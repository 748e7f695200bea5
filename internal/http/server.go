package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ahorro/internal/cache"
	"ahorro/internal/core"
	"ahorro/internal/middleware/ratelimit"
	"ahorro/internal/middleware/security"
	"ahorro/internal/middleware/trace"
)

// Ledger records users, montos and savings.
type Ledger interface {
	CreateUser(ctx context.Context, name, color string) (core.User, error)
	User(ctx context.Context, id int64) (core.User, error)
	Users(ctx context.Context) ([]core.User, error)

	CreateAmount(ctx context.Context, userID int64, value core.Money) (core.Amount, error)
	Amounts(ctx context.Context, userID int64) ([]core.Amount, error)
	SelectAmount(ctx context.Context, userID, id int64) (core.Amount, error)

	CreateSaving(ctx context.Context, s core.Saving) (core.Saving, error)
	Savings(ctx context.Context) ([]core.Saving, error)

	Init(ctx context.Context) error
}

// GoalEngine serves progress statistics and the milestone ladder.
type GoalEngine interface {
	Statistics(ctx context.Context) (core.Statistics, error)
	Milestones(ctx context.Context) ([]core.Milestone, error)
}

// ChallengeEngine runs the 24h challenge game.
type ChallengeEngine interface {
	Create(ctx context.Context, description string) (core.Challenge, error)
	Available(ctx context.Context) ([]core.Challenge, error)
	Current(ctx context.Context) (*core.Challenge, error)
	History(ctx context.Context) ([]core.Challenge, error)
	ActivateRandom(ctx context.Context) (core.Challenge, error)
	Complete(ctx context.Context, id, userID int64) (core.Challenge, bool, error)
	ApplyPenalty(ctx context.Context, id int64) error
	Penalties(ctx context.Context) ([]core.Penalty, error)
	AddPenalty(ctx context.Context, text string) (core.Penalty, error)
	RandomPenalty(ctx context.Context) (core.Penalty, error)
}

const statsCacheKey = "estadisticas"

type Server struct {
	http.Server

	ledger     Ledger
	goals      GoalEngine
	challenges ChallengeEngine

	tracer  *trace.Middleware
	limiter *ratelimit.Limiter

	// Statistics are recomputed from the full ledger on every read, so the
	// response is cached and invalidated on writes.
	statsCache   *cache.LRUCache[core.Statistics]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// NewServer wires routes and middleware, returning a ready-to-run server.
func NewServer(addr string, ledger Ledger, goals GoalEngine, challenges ChallengeEngine, statsTTL time.Duration) *Server {
	if statsTTL <= 0 {
		statsTTL = 30 * time.Second
	}

	s := &Server{
		ledger:       ledger,
		goals:        goals,
		challenges:   challenges,
		tracer:       trace.NewMiddleware(extractClientIP),
		limiter:      ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		statsCache:   cache.NewLRUCache[core.Statistics](1, statsTTL),
		cacheManager: cache.NewManager(),
	}
	s.cacheManager.Register(s.statsCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)

	mux.HandleFunc("POST /montos", s.handleCreateMonto)
	mux.HandleFunc("GET /montos", s.handleListMontos)
	mux.HandleFunc("PUT /montos/{id}/select", s.handleSelectMonto)

	mux.HandleFunc("POST /ahorros", s.handleCreateAhorro)
	mux.HandleFunc("GET /ahorros", s.handleListAhorros)

	mux.HandleFunc("GET /estadisticas", s.handleEstadisticas)
	mux.HandleFunc("GET /objetivos", s.handleObjetivos)

	mux.HandleFunc("GET /retos", s.handleRetoHistory)
	mux.HandleFunc("GET /retos/actual", s.handleRetoActual)
	mux.HandleFunc("GET /retos/disponibles", s.handleRetosDisponibles)
	mux.HandleFunc("POST /retos/crear", s.handleCrearReto)
	mux.HandleFunc("POST /retos/activar", s.handleActivarReto)
	mux.HandleFunc("POST /retos/{id}/complete", s.handleCompleteReto)
	mux.HandleFunc("POST /retos/{id}/aplicar-penitencia", s.handleAplicarPenitencia)

	mux.HandleFunc("GET /penitencias", s.handleListPenitencias)
	mux.HandleFunc("POST /penitencias", s.handleCreatePenitencia)
	mux.HandleFunc("GET /penitencias/random", s.handleRandomPenitencia)

	mux.HandleFunc("POST /init", s.handleInit)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	limited := s.limiter.Middleware(extractClientIP, nil)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           headers.Middleware(s.tracer.Middleware(limited(mux))),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Shutdown stops the HTTP server and the background cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) invalidateStats() {
	s.statsCache.Delete(statsCacheKey)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Ahorro 2026 API"})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Init(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
