package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmoteca_backend/internal/handlers"
)

// RegisterRoutes registers every HTTP route. The API lives at the
// root, without a version prefix; that is the wire contract of the
// service this backend replaced.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("")
	{
		appHandlers.MovieHandler.RegisterRoutes(api)
		appHandlers.PersonHandler.RegisterRoutes(api)
		appHandlers.CastHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
