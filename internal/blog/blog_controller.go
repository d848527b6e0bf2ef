package blog

import (
	"errors"
	"ghost-theme-storefront/internal/api"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/models"
	"ghost-theme-storefront/internal/render"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
)

// Api defines HTTP endpoints for blog posts, authors and tags.
type Api interface {
	GetPosts(c *gin.Context)
	GetPostBySlug(c *gin.Context)
	GetAuthors(c *gin.Context)
	GetAuthorBySlug(c *gin.Context)
	GetTagBySlug(c *gin.Context)
}

// Controller handles API operations for the blog.
type Controller struct {
	*environment.Env
	AuthorDirectoryService
	Renderer *render.Renderer
}

// ensure Controller implements Api
var _ Api = &Controller{}

// PostDetail is a post detail response with the sanitized rendered body.
type PostDetail struct {
	models.BlogPost
	Html string `json:"html"`
}

// GetPosts lists blog posts, newest first, optionally filtered by tag
// slug and/or author id.
//
// Filtering by a tag slug that resolves to no tag record yields an
// empty list, not an error: an unknown tag means zero matches.
//
// @ID getPosts
// @Summary List blog posts
// @Tags blog
// @Router /blog [get]
// @Param tag query string false "Tag slug"
// @Param author query string false "Author id"
// @Success 200 {array} models.BlogPost
// @Failure 500 {object} api.RestJsonErrorResponse
func (bc *Controller) GetPosts(c *gin.Context) {
	ctx := c.Request.Context()

	tagSlug := c.Query("tag")
	authorId := c.Query("author")

	posts := make([]models.BlogPost, 0)

	if len(tagSlug) > 0 {
		var tag models.Tag
		err := bc.FindTagBySlug(ctx, tagSlug, &tag)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, posts)
			return
		}
		if err != nil {
			bc.LogError(logging.GetLogType("blog", tagSlug), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch blog posts"))
			return
		}

		if err = bc.FindPostsByTagName(ctx, tag.Name, authorId, &posts); err != nil {
			bc.LogError(logging.GetLogType("blog", tagSlug), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch blog posts"))
			return
		}

		c.JSON(http.StatusOK, posts)
		return
	}

	var err error
	if len(authorId) > 0 {
		err = bc.FindPostsByAuthorId(ctx, authorId, &posts)
	} else {
		err = bc.FindAllPosts(ctx, &posts)
	}
	if err != nil {
		bc.LogError(logging.GetLogType("blog"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch blog posts"))
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostBySlug returns one post with its author and the rendered body.
//
// @ID getPostBySlug
// @Summary Get one blog post
// @Tags blog
// @Router /blog/{slug} [get]
// @Param slug path string true "Post slug"
// @Success 200 {object} blog.PostDetail
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (bc *Controller) GetPostBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	var post models.BlogPost
	err := bc.FindPostBySlug(ctx, slug, &post)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Post not found"))
		return
	}
	if err != nil {
		bc.LogError(logging.GetLogType("blog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch blog post"))
		return
	}

	html, err := bc.Renderer.Render(post.Content)
	if err != nil {
		bc.LogError(logging.GetLogType("blog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to render blog post"))
		return
	}

	c.JSON(http.StatusOK, PostDetail{BlogPost: post, Html: html})
}

// GetAuthors lists all authors with their post counts, name ascending.
//
// @ID getAuthors
// @Summary List authors
// @Tags blog
// @Router /authors [get]
// @Success 200 {array} blog.AuthorWithCount
// @Failure 500 {object} api.RestJsonErrorResponse
func (bc *Controller) GetAuthors(c *gin.Context) {
	ctx := c.Request.Context()

	authors, err := bc.ListAuthors(ctx)
	if err != nil {
		bc.LogError(logging.GetLogType("blog"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch authors"))
		return
	}

	c.JSON(http.StatusOK, authors)
}

// GetAuthorBySlug returns one author with their posts, newest first.
// The author's own record is nested into each post.
//
// @ID getAuthorBySlug
// @Summary Get one author
// @Tags blog
// @Router /authors/{slug} [get]
// @Param slug path string true "Author id"
// @Success 200 {object} blog.AuthorDetail
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (bc *Controller) GetAuthorBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	var author models.Author
	err := bc.FindAuthorById(ctx, slug, &author)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Author not found"))
		return
	}
	if err != nil {
		bc.LogError(logging.GetLogType("blog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch author"))
		return
	}

	posts := make([]models.BlogPost, 0)
	if err = bc.FindPostsByAuthorId(ctx, author.ID, &posts); err != nil {
		bc.LogError(logging.GetLogType("blog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch author"))
		return
	}

	for i := range posts {
		posts[i].Author = &author
	}

	c.JSON(http.StatusOK, AuthorDetail{Author: author, Posts: posts})
}

// GetTagBySlug returns a tag plus all posts matching its name per the
// free-text tag match. A tag with zero matching posts returns an empty
// posts list; only an unknown slug is a 404.
//
// @ID getTagBySlug
// @Summary Get one tag with its posts
// @Tags blog
// @Router /tags/{slug} [get]
// @Param slug path string true "Tag slug"
// @Success 200 {object} blog.TagDetail
// @Failure 404 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (bc *Controller) GetTagBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if len(slug) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'slug' is missing"))
		return
	}

	var tag models.Tag
	err := bc.FindTagBySlug(ctx, slug, &tag)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponse("Tag not found"))
		return
	}
	if err != nil {
		bc.LogError(logging.GetLogType("blog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch tag"))
		return
	}

	posts := make([]models.BlogPost, 0)
	if err = bc.FindPostsByTagName(ctx, tag.Name, "", &posts); err != nil {
		bc.LogError(logging.GetLogType("blog", slug), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to fetch tag"))
		return
	}

	c.JSON(http.StatusOK, TagDetail{Tag: tag, Posts: posts})
}
