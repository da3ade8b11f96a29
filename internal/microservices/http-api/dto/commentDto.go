package dto

import (
	"newshub/internal/microservices/http-api/models"
)

// CreateCommentRequest for POST /api/articles/:article_id/comments.
// Decoded from a raw map so extra keys can be rejected.
type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// VoteRequest is the PATCH body for articles and comments.
type VoteRequest struct {
	IncVotes *int32 `json:"inc_votes"`
}

type CommentResponse struct {
	Comment models.Comment `json:"comment"`
}

// PaginatedCommentResponse for returning a page of an article's comments
type PaginatedCommentResponse struct {
	Comments   []models.Comment `json:"comments"`
	TotalCount int              `json:"totalCount"`
}

// NewPaginatedCommentResponse never returns a nil slice so an empty page encodes as [].
func NewPaginatedCommentResponse(comments []models.Comment, total int) *PaginatedCommentResponse {
	if comments == nil {
		comments = []models.Comment{}
	}
	return &PaginatedCommentResponse{
		Comments:   comments,
		TotalCount: total,
	}
}
