package api

import (
	"net/http"
	"sync"

	"product-catalog/app"
	"product-catalog/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	application *app.Application
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		config.InitLogger(cfg)

		application = app.NewApplication(cfg)
		initErr = application.Init()
		if initErr != nil {
			zap.S().Errorf("Failed to initialize application: %v", initErr)
		}
	})
}

// Handler is the serverless entry point. The application is built on the
// first invocation and reused by every later one.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, `{"success":false,"message":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	application.Router().ServeHTTP(w, r)
}
