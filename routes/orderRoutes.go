package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/controllers"
	"github.com/shophub-store/shophub-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetMyOrders)
		orders.GET("/all", middlewares.RequireAdmin(), controllers.GetAllOrders)
		orders.GET("/:id", controllers.GetOrder)
	}
}
