package main

import (
	_ "product-catalog/docs"

	"product-catalog/app"
	"product-catalog/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Product Catalog API
// @version 1.0
// @description Product list, add-product and delete endpoints.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()
	logger := config.InitLogger(cfg)
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		zap.S().Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	port := ":" + cfg.Port
	zap.S().Infof("Server starting on port %s", port)
	zap.S().Infof("Environment: %s, store: %s", cfg.AppEnv, cfg.StoreDriver)
	zap.S().Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := application.Router().Run(port); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}
