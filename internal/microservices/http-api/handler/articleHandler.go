package handler

import (
	"net/http"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/service"
	"newshub/internal/microservices/http-api/validator"
	"newshub/internal/shared"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.POST("", h.Create)
	router.GET("/:article_id", h.GetByID)
	router.PATCH("/:article_id", h.UpdateVotes)
	router.DELETE("/:article_id", h.Delete)
}

// List handles GET /api/articles?topic=&sort_by=&order=&limit=&p=
func (h *ArticleHandler) List(c *gin.Context) {
	q, err := validator.ParseArticleListQuery(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.articleService.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.InvalidInput("article body: %v", err))
		return
	}
	// shape problems are reported before author or topic are looked up
	if err := validator.NewArticle(req); err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.ArticleResponse{Article: dto.ArticleView{Article: *article}})
}

// GetByID handles GET /api/articles/:article_id
// With render=html the response also carries the body as sanitized HTML.
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := validator.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	view := dto.ArticleView{Article: *article}
	if c.Query("render") == "html" {
		html, err := shared.RenderMarkdown(article.Body)
		if err != nil {
			_ = c.Error(errs.Wrap(err, "render article body"))
			return
		}
		view.BodyHTML = html
	}
	c.JSON(http.StatusOK, dto.ArticleResponse{Article: view})
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, err := validator.ParseID("article_id", c.Param("article_id"))
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

	article, err := h.articleService.UpdateVotes(c.Request.Context(), id, delta)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticleResponse{Article: dto.ArticleView{Article: *article}})
}

// Delete handles DELETE /api/articles/:article_id and its comments
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := validator.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
