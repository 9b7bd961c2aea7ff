package main

import (
	"embed"
	"html/template"
	"log/slog"

	"weather-now/internal/config"
	"weather-now/internal/display"
	"weather-now/internal/location"
	"weather-now/internal/providers/openmeteo"
	"weather-now/internal/search"
	"weather-now/internal/timezone"
	"weather-now/internal/types"
	"weather-now/internal/weather"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// App encapsulates application dependencies
type App struct {
	router   *gin.Engine
	logger   *slog.Logger
	cfg      *config.Config
	policy   types.CategoryPolicy
	searcher *search.Searcher
	sessions *search.SessionStore
	renderer *display.Renderer
}

// NewApp creates a new application wired to the Open-Meteo services
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	locationSvc := location.NewLocationService(
		openmeteo.Options{BaseURL: cfg.OpenMeteo.GeocodingURL, Timeout: cfg.OpenMeteo.Timeout},
		cfg.OpenMeteo.Language,
		logger,
	)
	weatherSvc := weather.NewWeatherService(
		openmeteo.Options{BaseURL: cfg.OpenMeteo.ForecastURL, Timeout: cfg.OpenMeteo.Timeout},
		logger,
	)

	// Dates fall back to the reported UTC offset without the timezone finder
	var zones display.ZoneLoader
	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone finder unavailable", "error", err)
	} else {
		zones = tzSvc
	}

	return NewAppWithServices(cfg, logger, locationSvc, weatherSvc, zones)
}

// NewAppWithServices creates an application with custom services
// This is useful for testing with mock services
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	locationSvc location.Service,
	weatherSvc weather.Service,
	zones display.ZoneLoader,
) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(corsMiddleware(cfg.Server.CorsOrigins))

	policy := types.ParseCategoryPolicy(cfg.App.Classification)
	searcher := search.NewSearcher(locationSvc, weatherSvc, logger)

	app := &App{
		router:   router,
		logger:   logger,
		cfg:      cfg,
		policy:   policy,
		searcher: searcher,
		sessions: search.NewSessionStore(searcher, cfg.App.SessionTTL),
		renderer: display.NewRenderer(policy, zones),
	}

	logger.Info("application initialized", "classification", string(policy))

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
