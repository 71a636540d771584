package main

import (
	"log"
	"os"

	"motion-pcs-backend/internal/api/routes"
	"motion-pcs-backend/internal/config"
	"motion-pcs-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "motion-pcs-backend/docs" // This is needed for swag
)

//	@title			Motion Hellas PCS API
//	@version		1.0
//	@description	Backend API for the Motion Hellas Project Coordination System: clients, projects, scopes, tickets, comments and notifications with team-based access control.

//	@contact.name	API Support
//	@contact.email	support@motionhellas.example

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:4000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						token
//	@description				Session token set by the login endpoint.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg)

	port := cfg.Port
	if port == "" {
		port = "4000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
