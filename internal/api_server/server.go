package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/talentlink/marketplace/internal/auth"
	"github.com/talentlink/marketplace/internal/config"
	handlers "github.com/talentlink/marketplace/internal/handlers/v1alpha1"
	"github.com/talentlink/marketplace/internal/service"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/pkg/log"
	"github.com/talentlink/marketplace/pkg/metrics"
	"github.com/talentlink/marketplace/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
}

// New returns a new instance of the marketplace API server.
func New(cfg *config.Config, store store.Store, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	authenticator, err := auth.NewAuthenticator(s.cfg.Service.Authentication)
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %w", err)
	}

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   strings.Split(s.cfg.Service.CorsOrigins, ","),
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		authenticator.Authenticator,
		chiMiddleware.RequestID,
		middleware.RequestID,
		log.Logger(zap.L(), "http"),
		chiMiddleware.Recoverer,
	)

	h := handlers.NewHandler(service.NewServiceHandler(s.store))
	h.RegisterRoutes(router)

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
