package main

import (
	"os"

	"github.com/kanav2002/plagchecker/internal/pkg/logger"
	"github.com/kanav2002/plagchecker/internal/server"
)

// @title Plagchecker API
// @version 1.0
// @description Instructor account and course catalog API for the plagiarism checker backend

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

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
