package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/controllers"
	"github.com/shophub-store/shophub-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/profile", middlewares.RequireAuth(), controllers.GetProfile)
		auth.PUT("/profile", middlewares.RequireAuth(), controllers.UpdateProfile)
	}
}
