package main

import (
	"premier-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := LoadConfiguration()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := NewApp(cfg)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to initialize application: %v", err)
	}

	app.InitializeServer()
	app.StartServer()
}
