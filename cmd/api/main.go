package main

import (
	"context"
	"os"

	"github.com/yigit/collegeadmin/internal/pkg/logger"
	"github.com/yigit/collegeadmin/internal/server"
)

func main() {
	// NewServer orchestrates config, logger, both stores, migrations, seeding and the router
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
