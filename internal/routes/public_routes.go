package routes

import (
	"ghost-theme-storefront/internal/auth"
	"ghost-theme-storefront/internal/blog"
	"ghost-theme-storefront/internal/catalog"
	"ghost-theme-storefront/internal/constants"
	"ghost-theme-storefront/internal/forms"
	"ghost-theme-storefront/internal/pages"
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(r *gin.Engine, controllerRegistry map[int]any) {

	// catalog
	catalogApi := controllerRegistry[constants.Catalog].(catalog.Api)
	r.GET("/themes", catalogApi.GetThemes)
	r.GET("/themes/:id", catalogApi.GetThemeById)
	r.GET("/documentation", catalogApi.GetDocumentation)
	r.GET("/documentation/theme/:slug", catalogApi.GetDocumentationByThemeSlug)

	// blog
	blogApi := controllerRegistry[constants.Blog].(blog.Api)
	r.GET("/blog", blogApi.GetPosts)
	r.GET("/blog/:slug", blogApi.GetPostBySlug)
	r.GET("/authors", blogApi.GetAuthors)
	r.GET("/authors/:slug", blogApi.GetAuthorBySlug)
	r.GET("/tags/:slug", blogApi.GetTagBySlug)

	// pages (reads only, mutations are registered behind auth)
	pagesApi := controllerRegistry[constants.Pages].(pages.Api)
	r.GET("/pages", pagesApi.GetPages)
	r.GET("/pages/:slug", pagesApi.GetPageBySlug)

	// forms
	formsApi := controllerRegistry[constants.Forms].(forms.Api)
	r.POST("/contact", formsApi.SubmitContact)
	r.POST("/subscribe", formsApi.Subscribe)

	// auth
	authApi := controllerRegistry[constants.Auth].(auth.Api)
	r.POST("/auth/login", authApi.Login)
}
