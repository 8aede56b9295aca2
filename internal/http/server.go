// Package http provides the Gin HTTP server, route registration, and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/hearthside/hearth/internal/auth/http"
	authService "github.com/hearthside/hearth/internal/auth/service"
	familyHTTP "github.com/hearthside/hearth/internal/family/http"
	"github.com/hearthside/hearth/internal/metrics"
	recordsHTTP "github.com/hearthside/hearth/internal/records/http"
	userHTTP "github.com/hearthside/hearth/internal/user/http"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. Routes are registered separately
// through SetupRouter once the handlers are available.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and middleware settings for route registration.
type RouterConfig struct {
	SessionStore authService.SessionStore

	FamilyHandler       *familyHTTP.FamilyHandler
	MemberHandler       *familyHTTP.MemberHandler
	AppointmentHandler  *recordsHTTP.AppointmentHandler
	MedicationHandler   *recordsHTTP.MedicationHandler
	AllergyHandler      *recordsHTTP.AllergyHandler
	ConditionHandler    *recordsHTTP.ConditionHandler
	VaccinationHandler  *recordsHTTP.VaccinationHandler
	NotificationHandler *recordsHTTP.NotificationHandler
	UserHandler         *userHTTP.UserHandler
	TwoFactorHandler    *authHTTP.TwoFactorHandler

	// MeterProvider enables HTTP request metrics when non-nil.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	RateLimitTwoFactorEnabled        bool
	RateLimitTwoFactorRequestsPerSec float64
	RateLimitTwoFactorBurst          int
}

// SetupRouter builds the Gin router and registers all routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.SessionMiddleware(cfg.SessionStore, s.logger))

	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	// Current user
	v1.GET("/users/me", cfg.UserHandler.MeHandler)

	// Two-factor enrollment. Verification carries its own tight limit to
	// slow down code guessing.
	twofactor := v1.Group("/twofactor")
	twofactor.POST("/setup", cfg.TwoFactorHandler.SetupHandler)
	twofactor.DELETE("", cfg.TwoFactorHandler.DisableHandler)
	if cfg.RateLimitTwoFactorEnabled {
		twofactor.POST(
			"/verify",
			authHTTP.RateLimitMiddleware(
				cfg.RateLimitTwoFactorRequestsPerSec,
				cfg.RateLimitTwoFactorBurst,
				s.logger,
			),
			cfg.TwoFactorHandler.VerifyHandler,
		)
	} else {
		twofactor.POST("/verify", cfg.TwoFactorHandler.VerifyHandler)
	}

	// Family creation is not family-scoped; everything below it is.
	v1.POST("/families", cfg.FamilyHandler.CreateHandler)

	family := v1.Group("/families/:family_id")
	family.Use(authHTTP.FamilyScopeMiddleware(s.logger))

	family.GET("", cfg.FamilyHandler.GetHandler)
	family.PUT("", cfg.FamilyHandler.RenameHandler)

	family.POST("/members", cfg.MemberHandler.CreateHandler)
	family.GET("/members", cfg.MemberHandler.ListHandler)
	family.GET("/members/:member_id", cfg.MemberHandler.GetHandler)
	family.PUT("/members/:member_id", cfg.MemberHandler.UpdateHandler)
	family.DELETE("/members/:member_id", cfg.MemberHandler.DeleteHandler)

	family.POST("/appointments", cfg.AppointmentHandler.CreateHandler)
	family.GET("/appointments", cfg.AppointmentHandler.ListHandler)
	family.GET("/appointments/:appointment_id", cfg.AppointmentHandler.GetHandler)
	family.PUT("/appointments/:appointment_id", cfg.AppointmentHandler.UpdateHandler)
	family.DELETE("/appointments/:appointment_id", cfg.AppointmentHandler.DeleteHandler)

	family.POST("/medications", cfg.MedicationHandler.CreateHandler)
	family.GET("/medications", cfg.MedicationHandler.ListHandler)
	family.GET("/medications/:medication_id", cfg.MedicationHandler.GetHandler)
	family.PUT("/medications/:medication_id", cfg.MedicationHandler.UpdateHandler)
	family.DELETE("/medications/:medication_id", cfg.MedicationHandler.DeleteHandler)

	family.POST("/allergies", cfg.AllergyHandler.CreateHandler)
	family.GET("/allergies", cfg.AllergyHandler.ListHandler)
	family.GET("/allergies/:allergy_id", cfg.AllergyHandler.GetHandler)
	family.PUT("/allergies/:allergy_id", cfg.AllergyHandler.UpdateHandler)
	family.DELETE("/allergies/:allergy_id", cfg.AllergyHandler.DeleteHandler)

	family.POST("/conditions", cfg.ConditionHandler.CreateHandler)
	family.GET("/conditions", cfg.ConditionHandler.ListHandler)
	family.GET("/conditions/:condition_id", cfg.ConditionHandler.GetHandler)
	family.PUT("/conditions/:condition_id", cfg.ConditionHandler.UpdateHandler)
	family.DELETE("/conditions/:condition_id", cfg.ConditionHandler.DeleteHandler)

	family.POST("/vaccinations", cfg.VaccinationHandler.CreateHandler)
	family.GET("/vaccinations", cfg.VaccinationHandler.ListHandler)
	family.GET("/vaccinations/:vaccination_id", cfg.VaccinationHandler.GetHandler)
	family.PUT("/vaccinations/:vaccination_id", cfg.VaccinationHandler.UpdateHandler)
	family.DELETE("/vaccinations/:vaccination_id", cfg.VaccinationHandler.DeleteHandler)

	family.GET("/notifications", cfg.NotificationHandler.ListHandler)
	family.POST("/notifications/:notification_id/mark-read", cfg.NotificationHandler.MarkReadHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured, call SetupRouter first")
	}

	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
