package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/controllers"
	"github.com/shophub-store/shophub-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)

	admin := server.Group("/products", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateProduct)
		admin.PUT("/:id", controllers.UpdateProduct)
		admin.DELETE("/:id", controllers.DeleteProduct)
	}
}
