package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/bootstrap"
	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/db"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	postgres *db.PostgresDB
	mongo    *db.MongoDB
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
// Any store that cannot be reached fails the whole startup.
func NewServer(ctx context.Context) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	postgres, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	mongoDB, err := bootstrap.SetupMongo(ctx, cfg, lgr)
	if err != nil {
		postgres.Close()
		return nil, fmt.Errorf("failed to setup mongo: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, postgres, mongoDB, lgr)
	bootstrap.SeedData(ctx, cfg, deps)

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		postgres.Close()
		_ = mongoDB.Close(ctx)
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return &Server{
		config:   cfg,
		router:   router,
		postgres: postgres,
		mongo:    mongoDB,
		logger:   lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msgf("Server is running at http://localhost:%s", s.config.Server.Port)
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closeStores(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, bootstrap.ShutdownTimeout(s.config))
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if !s.closeStores(ctx) {
		shutdownError = true
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}

// closeStores releases the pool and the mongo client; it reports false when any close failed
func (s *Server) closeStores(ctx context.Context) bool {
	ok := true

	if s.postgres != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.postgres.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	if s.mongo != nil {
		s.logger.Info().Msg("Disconnecting MongoDB client...")
		if err := s.mongo.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("MongoDB disconnect error")
			ok = false
		} else {
			s.logger.Info().Msg("MongoDB client disconnected.")
		}
	}

	return ok
}
