package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/controllers"
	"github.com/shophub-store/shophub-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/stats", controllers.GetDashboardStats)
		admin.GET("/users", controllers.GetUsers)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.PUT("/orders/:id", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:id", controllers.DeleteOrder)
	}
}
