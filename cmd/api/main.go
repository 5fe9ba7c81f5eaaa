package main

import (
	"os"

	"github.com/campusconn/backend/internal/pkg/logger"
	"github.com/campusconn/backend/internal/server"
)

// @title CampusConn API
// @version 1.0
// @description API for the CampusConn campus social platform

// @contact.name API Support
// @contact.email support@campusconn.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by the auth provider

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
