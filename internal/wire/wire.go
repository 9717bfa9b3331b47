package wire

import (
	"context"
	"net/http"
	"time"

	"pilgrim-provider/internal/adaptor"
	"pilgrim-provider/internal/data/repository"
	"pilgrim-provider/internal/usecase"
	"pilgrim-provider/pkg/identity"
	"pilgrim-provider/pkg/middleware"
	"pilgrim-provider/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router and the pieces main needs to run it.
type App struct {
	Router  *chi.Mux
	Limiter *middleware.RateLimiter
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Wiring builds services, handlers and routes from the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	verifier := identity.NewJWTVerifier(config.Auth.JWTSecret, config.Auth.Issuer, config.Auth.Audience)
	limiter := middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst)

	router := setupRouter(handler, verifier, limiter, repo.DB, config, logger)

	return &App{
		Router:  router,
		Limiter: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	verifier identity.Verifier,
	limiter *middleware.RateLimiter,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware; CORS answers preflight before any auth
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.AllowedOrigin))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	// protected wraps every provider endpoint with the same chain
	protected := func(r chi.Router) {
		r.Use(middleware.Auth(verifier, logger))
		r.Use(middleware.RequireRole(config.Auth.RequiredRole, logger))
		r.Use(limiter.Middleware(logger))
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseMethodNotAllowed(w)
		})
	}

	wireServices(r, handler.Service, protected)
	wireBookings(r, handler.Booking, protected)
	wireStats(r, handler.Stats, protected)
	wireProfile(r, handler.Provider, protected)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			utils.ResponseError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
