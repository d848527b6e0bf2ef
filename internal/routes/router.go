package routes

import (
	"ghost-theme-storefront/internal/middlewares"
	"github.com/gin-gonic/gin"
)

func InitRouter(engine *gin.Engine, controllerRegistry map[int]any) {
	InitMiddleware(engine)

	RegisterProtectedRoutes(engine, controllerRegistry)
	RegisterPublicRoutes(engine, controllerRegistry)
	RegisterUtilityRoutes(engine, controllerRegistry)
}

func InitMiddleware(engine *gin.Engine) {
	engine.Use(middlewares.CORSMiddleware())
}
