package routes

import (
	"net/http"

	"product-catalog/controllers"
	"product-catalog/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Product *controllers.ProductController
	Auth    *controllers.AuthController
}

func SetupRoutes(router *gin.Engine, ctrls Controllers, jwtSecret string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/login", ctrls.Auth.Login)
	router.GET("/products", ctrls.Product.GetAllProducts)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.AdminMiddleware())
	{
		admin.GET("/products/duplicates", ctrls.Product.GetDuplicateNames)
		admin.POST("/products", ctrls.Product.CreateProduct)
		admin.DELETE("/products", ctrls.Product.DeleteProduct)
		admin.DELETE("/products/:id", ctrls.Product.DeleteProduct)
	}
}
