package routes

import (
	"ghost-theme-storefront/internal/auth"
	"ghost-theme-storefront/internal/constants"
	"ghost-theme-storefront/internal/controllers"
	"ghost-theme-storefront/internal/sitemap"
	"github.com/gin-gonic/gin"
)

func RegisterUtilityRoutes(r *gin.Engine, controllerRegistry map[int]any) {
	r.GET("/heartbeat", controllers.GetHeartBeat)
	r.GET("/status", controllers.GetStatus)

	sitemapApi := controllerRegistry[constants.Sitemap].(sitemap.Api)
	r.GET("/sitemap.xml", sitemapApi.GetSitemap)

	authApi := controllerRegistry[constants.Auth].(auth.Api)
	r.GET("/auth/hash/:pw", authApi.CreatePasswordHash)
}
