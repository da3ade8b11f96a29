package dto

import (
	"newshub/internal/microservices/http-api/models"
)

// CreateArticleRequest for POST /api/articles
type CreateArticleRequest struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	Body          string  `json:"body" binding:"required"`
	Topic         string  `json:"topic" binding:"required"`
	ArticleImgURL *string `json:"article_img_url"`
}

// ArticleResponse wraps a single article. BodyHTML is set only when rendering was requested.
type ArticleResponse struct {
	Article ArticleView `json:"article"`
}

type ArticleView struct {
	models.Article
	BodyHTML string `json:"body_html,omitempty"`
}

type ArticleListResponse struct {
	Articles   []models.Article `json:"articles"`
	TotalCount int              `json:"totalCount"`
}

func NewArticleListResponse(articles []models.Article, total int) *ArticleListResponse {
	if articles == nil {
		articles = []models.Article{}
	}
	return &ArticleListResponse{
		Articles:   articles,
		TotalCount: total,
	}
}
