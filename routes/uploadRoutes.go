package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/controllers"
	"github.com/shophub-store/shophub-api/middlewares"
)

func UploadRoutes(server *gin.Engine) {
	server.POST("/uploads/image", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadImage)
}
