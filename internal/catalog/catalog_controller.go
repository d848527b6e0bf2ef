package catalog

import (
	"errors"
	"ghost-theme-storefront/internal/api"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
)

// Api defines HTTP endpoints for the theme catalog and its documentation.
type Api interface {
	GetThemes(c *gin.Context)
	GetThemeById(c *gin.Context)
	GetDocumentation(c *gin.Context)
	GetDocumentationByThemeSlug(c *gin.Context)
}

// Controller handles API operations for themes and theme documentation.
type Controller struct {
	*environment.Env
}

// ensure Controller implements Api
var _ Api = &Controller{}

// GetThemes returns all themes, featured ones first.
//
// @ID getThemes
// @Summary List all themes
// @Tags catalog
// @Router /themes [get]
// @Success 200 {array} models.Theme
// @Failure 500 {object} api.RestJsonErrorResponse
func (cc *Controller) GetThemes(c *gin.Context) {
	ctx := c.Request.Context()

	themes := make([]models.Theme, 0)
	if err := cc.FindAllThemes(ctx, &themes); err != nil {
		cc.LogError(logging.GetLogType("catalog"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch themes"))
		return
	}

	c.JSON(http.StatusOK, themes)
}

// GetThemeById returns the theme with the given slug id.
//
// @ID getThemeById
// @Summary Get one theme
// @Tags catalog
// @Router /themes/{id} [get]
// @Param id path string true "Theme id"
// @Success 200 {object} models.Theme
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (cc *Controller) GetThemeById(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if len(id) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'id' is missing"))
		return
	}

	var theme models.Theme
	err := cc.FindThemeById(ctx, id, &theme)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Theme not found"))
		return
	}
	if err != nil {
		cc.LogError(logging.GetLogType("catalog", id), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch theme"))
		return
	}

	c.JSON(http.StatusOK, theme)
}

// GetDocumentation returns all documentation entries, newest first.
//
// @ID getDocumentation
// @Summary List documentation
// @Tags catalog
// @Router /documentation [get]
// @Success 200 {array} models.Documentation
// @Failure 500 {object} api.RestJsonErrorResponse
func (cc *Controller) GetDocumentation(c *gin.Context) {
	ctx := c.Request.Context()

	docs := make([]models.Documentation, 0)
	if err := cc.FindAllDocumentation(ctx, &docs); err != nil {
		cc.LogError(logging.GetLogType("catalog"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch documentation"))
		return
	}

	c.JSON(http.StatusOK, docs)
}

// GetDocumentationByThemeSlug returns the documentation entry whose slug
// matches the theme's slug.
//
// @ID getDocumentationByThemeSlug
// @Summary Get theme documentation
// @Tags catalog
// @Router /documentation/theme/{slug} [get]
// @Param slug path string true "Theme slug"
// @Success 200 {object} models.Documentation
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (cc *Controller) GetDocumentationByThemeSlug(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	var doc models.Documentation
	err := cc.FindDocumentationBySlug(ctx, slug, &doc)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Documentation not found"))
		return
	}
	if err != nil {
		cc.LogError(logging.GetLogType("catalog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch documentation"))
		return
	}

	c.JSON(http.StatusOK, doc)
}
