package rest

import (
	"net/http"

	querybus "github.com/evanhearne/ds-serverlessREST-lab/application/queries/bus"
	"github.com/evanhearne/ds-serverlessREST-lab/interfaces/http/rest/handlers"
	"github.com/evanhearne/ds-serverlessREST-lab/interfaces/http/rest/middleware"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/common"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options tunes the router
type Options struct {
	EnableCORS bool
	StrictCast bool
	Debug      bool

	// RequestLogged is set when the caller has already logged the raw
	// request, as the Lambda entry does with the gateway event.
	RequestLogged bool
}

// Router creates and configures the HTTP router
type Router struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
	opts     Options
}

// NewRouter creates a new router instance
func NewRouter(queryBus *querybus.QueryBus, logger *zap.Logger, opts Options) *Router {
	return &Router{
		queryBus: queryBus,
		logger:   logger,
		opts:     opts,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	if !rt.opts.RequestLogged {
		router.Use(middleware.RequestDump(rt.logger))
	}
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.opts.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.NotFound(rt.fallback(http.StatusNotFound))
	router.MethodNotAllowed(rt.fallback(http.StatusMethodNotAllowed))

	router.Get("/health", handlers.Health)
	router.Get("/ready", handlers.Ready)

	movieHandler := handlers.NewMovieHandler(
		rt.queryBus,
		errors.NewErrorHandler(rt.logger, rt.opts.Debug),
		rt.opts.StrictCast,
		rt.logger,
	)

	router.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovie)
		r.Get("/{movieId}", movieHandler.GetMovie)
	})

	return router
}

// fallback answers unrouted requests with a JSON message
func (rt *Router) fallback(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := common.RespondMessage(w, status, http.StatusText(status)); err != nil {
			rt.logger.Error("Failed to encode response", zap.Error(err))
		}
	}
}
