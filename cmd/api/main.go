package main

import (
	"github.com/edumaster/backend/internal/pkg/logger"
	"github.com/edumaster/backend/internal/server"
)

// @title           EduMaster API
// @version         1.0
// @description     Course marketplace backend with admin moderation and instructor analytics.

// @contact.name   EduMaster Support
// @contact.email  support@edumaster.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server terminated with error")
	}
}
