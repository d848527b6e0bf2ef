package pages

import (
	"encoding/json"
	"errors"
	"ghost-theme-storefront/internal/api"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
	"gorm.io/gorm"
	"io"
	"net/http"
)

// Api defines HTTP endpoints for CMS pages: public reads plus the
// narrow admin mutations.
type Api interface {
	GetPages(c *gin.Context)
	GetPageBySlug(c *gin.Context)
	CreatePage(c *gin.Context)
	UpdatePage(c *gin.Context)
	DeletePage(c *gin.Context)
}

// Controller handles API operations for pages.
type Controller struct {
	*environment.Env
}

// ensure Controller implements Api
var _ Api = &Controller{}

type createPageRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Published   *bool  `json:"published"`
}

// GetPages lists published pages, newest first, without their body.
//
// @ID getPages
// @Summary List published pages
// @Tags pages
// @Router /pages [get]
// @Success 200 {array} models.PageSummary
// @Failure 500 {object} api.RestJsonErrorResponse
func (pc *Controller) GetPages(c *gin.Context) {
	ctx := c.Request.Context()

	pages := make([]models.PageSummary, 0)
	if err := pc.FindPublishedPageSummaries(ctx, &pages); err != nil {
		pc.LogError(logging.GetLogType("pages"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch pages"))
		return
	}

	c.JSON(http.StatusOK, pages)
}

// GetPageBySlug returns a full published page.
//
// @ID getPageBySlug
// @Summary Get one page
// @Tags pages
// @Router /pages/{slug} [get]
// @Param slug path string true "Page slug"
// @Success 200 {object} models.Page
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (pc *Controller) GetPageBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	var page models.Page
	err := pc.FindPublishedPageBySlug(ctx, slug, &page)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Page not found"))
		return
	}
	if err != nil {
		pc.LogError(logging.GetLogType("pages", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch page"))
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreatePage creates a page. A duplicate slug is a conflict, not an
// overwrite.
//
// @ID createPage
// @Summary Create a page
// @Tags pages
// @Router /pages [post]
// @Success 201 {object} models.Page
// @Failure 400 {object} api.RestJsonErrorResponse
// @Failure 409 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (pc *Controller) CreatePage(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error reading request body: %s", err))
		return
	}

	var request createPageRequest
	if err = json.Unmarshal(body, &request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error unmarshaling request body: %s", err))
		return
	}

	if len(request.Title) <= 0 || len(request.Slug) <= 0 || len(request.Content) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("Title, slug, and content are required"))
		return
	}

	var existing models.Page
	err = pc.FindPageBySlug(ctx, request.Slug, &existing)
	if err == nil {
		c.AbortWithStatusJSON(http.StatusConflict, api.NewErrorResponse("A page with this slug already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		pc.LogError(logging.GetLogType("pages", request.Slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to create page"))
		return
	}

	published := true
	if request.Published != nil {
		published = *request.Published
	}

	page := models.Page{
		ID:          uuidv7.New().String(),
		Title:       request.Title,
		Slug:        request.Slug,
		Content:     request.Content,
		Description: request.Description,
		Published:   published,
	}

	if err = pc.Env.CreatePage(ctx, &page); err != nil {
		pc.LogError(logging.GetLogType("pages", request.Slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to create page"))
		return
	}

	c.JSON(http.StatusCreated, page)
}

// UpdatePage merge-patches a page: only fields present in the request
// body are applied, everything else keeps its prior value.
//
// @ID updatePage
// @Summary Update a page
// @Tags pages
// @Router /pages/{slug} [put]
// @Param slug path string true "Page slug"
// @Success 200 {object} models.Page
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (pc *Controller) UpdatePage(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error reading request body: %s", err))
		return
	}

	var request map[string]json.RawMessage
	if err = json.Unmarshal(body, &request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error unmarshaling request body: %s", err))
		return
	}

	fields, err := mergePatchFields(request)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("invalid field value: %s", err))
		return
	}

	if len(fields) > 0 {
		rows, uErr := pc.UpdatePageBySlug(ctx, slug, fields)
		if uErr != nil {
			pc.LogError(logging.GetLogType("pages", slug), uErr)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to update page"))
			return
		}
		if rows == 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Page not found"))
			return
		}
	}

	var page models.Page
	err = pc.FindPageBySlug(ctx, slug, &page)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Page not found"))
		return
	}
	if err != nil {
		pc.LogError(logging.GetLogType("pages", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to update page"))
		return
	}

	c.JSON(http.StatusOK, page)
}

// mergePatchFields maps the update request onto page columns. Absent
// keys stay untouched; title and content additionally ignore empty
// strings so a patch can never blank out a page body.
func mergePatchFields(request map[string]json.RawMessage) (map[string]any, error) {
	fields := make(map[string]any)

	if raw, ok := request["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return nil, err
		}
		if len(title) > 0 {
			fields["title"] = title
		}
	}
	if raw, ok := request["content"]; ok {
		var content string
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}
		if len(content) > 0 {
			fields["content"] = content
		}
	}
	if raw, ok := request["description"]; ok {
		var description string
		if err := json.Unmarshal(raw, &description); err != nil {
			return nil, err
		}
		fields["description"] = description
	}
	if raw, ok := request["published"]; ok {
		var published bool
		if err := json.Unmarshal(raw, &published); err != nil {
			return nil, err
		}
		fields["published"] = published
	}

	return fields, nil
}

// DeletePage removes a page by slug.
//
// @ID deletePage
// @Summary Delete a page
// @Tags pages
// @Router /pages/{slug} [delete]
// @Param slug path string true "Page slug"
// @Success 200
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (pc *Controller) DeletePage(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	rows, err := pc.DeletePageBySlug(ctx, slug)
	if err != nil {
		pc.LogError(logging.GetLogType("pages", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to delete page"))
		return
	}
	if rows == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Page not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully"})
}
