package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/lifecycle/internal/airtable"
	"github.com/osa911/lifecycle/internal/api/handlers"
	"github.com/osa911/lifecycle/internal/api/middleware"
	"github.com/osa911/lifecycle/internal/api/validation"
	"github.com/osa911/lifecycle/internal/config"
	"github.com/osa911/lifecycle/internal/contact"
	"github.com/osa911/lifecycle/internal/formsession"
	"github.com/osa911/lifecycle/internal/logging"
	"github.com/osa911/lifecycle/internal/server/routes"
	"github.com/osa911/lifecycle/internal/service"
	"github.com/osa911/lifecycle/internal/tasks"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	store    contact.RecordStore
	notifier *service.ContactNotifier
	sessions *formsession.Registry
	cleanup  *tasks.SessionCleanup
}

// Option customizes a Server.
type Option func(*Server)

// WithRecordStore replaces the Airtable client.
func WithRecordStore(store contact.RecordStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	telegram := service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID)
	s := &Server{
		cfg:      cfg,
		router:   gin.New(),
		store:    airtable.NewClient(cfg.Airtable.Timeout, airtable.WithBaseURL(cfg.Airtable.APIURL)),
		notifier: service.NewContactNotifier(telegram),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.sessions = formsession.NewRegistry(s.newController)
	s.cleanup = tasks.NewSessionCleanup(s.sessions, cfg.FormSessionTTL, cfg.FormSweepEvery)
	return s
}

func (s *Server) newController() *contact.Controller {
	return contact.NewController(
		contact.SubmissionConfig{
			Token:     s.cfg.Airtable.Token,
			BaseID:    s.cfg.Airtable.BaseID,
			TableName: s.cfg.Airtable.TableName,
		},
		s.store,
		contact.WithSuccessHook(s.notifier.Notify),
	)
}

// Init wires middleware and routes
func (s *Server) Init() error {
	logger := logging.GetGlobalLogger()

	if err := validation.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	routes.SetupGlobalMiddleware(s.router, s.cfg.OTelServiceName, routes.Global{
		Logger: logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins: s.cfg.AllowedOrigins,
			Production:     s.cfg.IsProduction(),
		},
		Production: s.cfg.IsProduction(),
	})

	h := &routes.Handlers{
		Pages:   handlers.NewPageHandler(s.cfg.SiteURL),
		Contact: handlers.NewContactHandler(s.newController, service.NewRecaptchaService(s.cfg.RecaptchaSecretKey, s.cfg.RecaptchaMinScore)),
		Health:  handlers.NewHealthHandler(s.sessions),
	}
	m := &routes.Middleware{
		Validation:   middleware.NewValidationMiddleware(),
		Sessions:     s.sessions,
		SessionTTL:   s.cfg.FormSessionTTL,
		SecureCookie: s.cfg.IsProduction(),
		ContactRate: middleware.RateLimitConfig{
			RPS:   s.cfg.ContactRateRPS,
			Burst: s.cfg.ContactRateBurst,
		},
	}
	routes.Setup(s.router, h, m)

	if s.cfg.Airtable.Token == "" || s.cfg.Airtable.BaseID == "" {
		logger.Warn("AIRTABLE_TOKEN or AIRTABLE_BASE_ID not set; contact submissions will fail")
	}
	logger.Info("All routes have been set up successfully")
	return nil
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.cleanup.Start()
	defer s.cleanup.Stop()
	defer s.sessions.Close()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
