package handler

import (
	"net/http"

	"product-catalog/models"

	"github.com/gin-gonic/gin"
)

var infoRouter = newInfoRouter()

func newInfoRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Product Catalog API",
			Data: gin.H{
				"path":        c.Request.URL.Path,
				"placeholder": models.PlaceholderImageURL,
			},
		})
	})
	return r
}

// Handler answers the serverless root route with service information.
func Handler(w http.ResponseWriter, r *http.Request) {
	infoRouter.ServeHTTP(w, r)
}
