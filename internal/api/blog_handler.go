package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog post procedures
type BlogHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(repos *repository.Repositories, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		repos: repos,
		log:   log.With().Str("handler", "blog").Logger(),
	}
}

// CreateBlogPost handles POST /rpc/createBlogPost
func (h *BlogHandler) CreateBlogPost(c *gin.Context) {
	var input models.CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.ApplyDefaults()
	if errs := validation.ValidateCreateBlogPost(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	post := &models.BlogPost{
		Title:            input.Title,
		Slug:             input.Slug,
		Content:          input.Content,
		Excerpt:          input.Excerpt,
		FeaturedImageURL: input.FeaturedImageURL,
		AuthorID:         input.AuthorID,
		Categories:       input.Categories,
		Tags:             input.Tags,
		IsPublished:      input.IsPublished,
	}

	if err := h.repos.BlogPost.Create(c.Request.Context(), post); err != nil {
		respondStoreError(c, h.log, "createBlogPost", err)
		return
	}

	h.log.Info().Int64("post_id", post.ID).Str("slug", post.Slug).Bool("published", post.IsPublished).Msg("Blog post created")
	c.JSON(http.StatusCreated, post)
}

// GetBlogPosts handles GET /rpc/getBlogPosts
func (h *BlogHandler) GetBlogPosts(c *gin.Context) {
	posts, err := h.repos.BlogPost.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getBlogPosts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPublishedBlogPosts handles GET /rpc/getPublishedBlogPosts
func (h *BlogHandler) GetPublishedBlogPosts(c *gin.Context) {
	posts, err := h.repos.BlogPost.GetPublished(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getPublishedBlogPosts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
