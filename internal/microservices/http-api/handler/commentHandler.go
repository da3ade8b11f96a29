package handler

import (
	"net/http"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/service"
	"newshub/internal/microservices/http-api/validator"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterArticleRoutes registers comment routes nested under /api/articles
func (h *CommentHandler) RegisterArticleRoutes(articles *gin.RouterGroup) {
	articleComments := articles.Group("/:article_id/comments")
	{
		articleComments.GET("", h.ListByArticle)
		articleComments.POST("", h.Create)
	}
}

// RegisterRoutes registers routes under /api/comments
func (h *CommentHandler) RegisterRoutes(comments *gin.RouterGroup) {
	comments.GET("/:comment_id", h.GetByID)
	comments.PATCH("/:comment_id", h.UpdateVotes)
	comments.DELETE("/:comment_id", h.Delete)
}

// ListByArticle retrieves a page of comments for an article
// GET /api/articles/:article_id/comments?limit=10&p=1
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, err := validator.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := validator.ParsePage(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.commentService.ListByArticle(c.Request.Context(), articleID, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create adds a comment to an article
// POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := validator.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(errs.InvalidInput("comment body: %v", err))
		return
	}
	req, err := validator.NewComment(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), articleID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.CommentResponse{Comment: *comment})
}

// GetByID retrieves a comment by ID
// GET /api/comments/:comment_id
func (h *CommentHandler) GetByID(c *gin.Context) {
	commentID, err := validator.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), commentID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentResponse{Comment: *comment})
}

// UpdateVotes changes a comment's votes by inc_votes
// PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	commentID, err := validator.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.InvalidInput("vote body: %v", err))
		return
	}
	delta, err := validator.VoteDelta(req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.UpdateVotes(c.Request.Context(), commentID, delta)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentResponse{Comment: *comment})
}

// Delete deletes a comment
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := validator.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
