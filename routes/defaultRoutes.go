package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
