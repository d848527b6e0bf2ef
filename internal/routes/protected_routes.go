package routes

import (
	"ghost-theme-storefront/internal/constants"
	"ghost-theme-storefront/internal/middlewares"
	"ghost-theme-storefront/internal/pages"
	"github.com/gin-gonic/gin"
)

func RegisterProtectedRoutes(r *gin.Engine, controllerRegistry map[int]any) {

	authGroup := r.Group("")

	authGroup.Use(middlewares.AuthHandler())
	{
		// page mutations
		pagesApi := controllerRegistry[constants.Pages].(pages.Api)
		authGroup.POST("/pages", pagesApi.CreatePage)
		authGroup.PUT("/pages/:slug", pagesApi.UpdatePage)
		authGroup.DELETE("/pages/:slug", pagesApi.DeletePage)
	}
}
