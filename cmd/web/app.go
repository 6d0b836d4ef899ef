package main

import (
	"context"
	"net/http"
	"time"

	"premier-properties/internal/handlers"
	"premier-properties/internal/middleware"
	"premier-properties/internal/repositories"
	"premier-properties/internal/services"
	"premier-properties/internal/transformers"
	"premier-properties/internal/validators"
	"premier-properties/internal/views"
	"premier-properties/pkg/api"
	"premier-properties/pkg/config"
	"premier-properties/pkg/logger"
	"premier-properties/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	Sessions       repositories.SessionRepository
	BrowserHandler *handlers.BrowserHandler
	DetailHandler  *handlers.DetailHandler
	ContactHandler *handlers.ContactHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server

	listings   services.ListingsAPI
	validator  validators.ContactValidator
	renderer   *views.Renderer
	background context.Context
	stop       context.CancelFunc
}

// NewApp wires the application. Background workers run until Close.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}
	app.background, app.stop = context.WithCancel(context.Background())

	app.initializeMetrics()
	app.initializeRateLimiter()
	app.initializeSessions()

	if err := app.initializeDependencies(); err != nil {
		app.stop()
		return nil, err
	}

	app.initializeRouter()

	return app, nil
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(middleware.PerMinute(a.Config.RateLimit.PerMinute), a.Config.RateLimit.Burst)
	go a.RateLimiter.Cleanup(a.background, time.Hour)
}

// initialize the in-memory session store and its janitor
func (a *App) initializeSessions() {
	a.Sessions = repositories.NewSessionRepository(a.Config.Session.IdleTTL)
	interval := a.Config.Session.IdleTTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	go repositories.RunJanitor(a.background, a.Sessions, interval)
}

// initialize all dependencies
func (a *App) initializeDependencies() error {
	// backend client
	client := api.NewListingsClient(a.Config.APIOrigin())
	a.listings = client
	logger.GlobalLogger.Printf("Listings backend: %s", client.BaseURL())

	// validators
	a.validator = validators.NewContactValidator()

	// transformers
	addrTrans := transformers.NewAddressTransformer()
	cardTrans := transformers.NewCardTransformer(addrTrans)
	detailTrans := transformers.NewDetailTransformer(addrTrans)
	mapTrans := transformers.NewMapTransformer(transformers.MapOptions{
		TileURL:     a.Config.Map.TileURL,
		Attribution: a.Config.Map.Attribution,
		Zoom:        a.Config.Map.Zoom,
		FallbackLat: a.Config.Map.FallbackLat,
		FallbackLng: a.Config.Map.FallbackLng,
	}, addrTrans)

	// views
	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}
	a.renderer = renderer

	// handlers
	a.BrowserHandler = handlers.NewBrowserHandler(cardTrans, detailTrans, mapTrans)
	a.DetailHandler = handlers.NewDetailHandler()
	a.ContactHandler = handlers.NewContactHandler()
	return nil
}

func (a *App) newSession(id string) *services.Session {
	return services.NewSession(id, a.listings, a.validator)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.Router.HTMLRender = a.renderer
	a.setupMiddleware()
	a.setupRoutes()
}

// Close stops background workers.
func (a *App) Close() {
	a.stop()
}
