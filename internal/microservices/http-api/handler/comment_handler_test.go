package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/handler"
	"newshub/internal/microservices/http-api/models"
	"newshub/internal/microservices/http-api/query"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCommentRouter(svc *MockCommentService) *gin.Engine {
	router, api := newTestEngine()
	h := handler.NewCommentHandler(svc)
	h.RegisterArticleRoutes(api.Group("/articles"))
	h.RegisterRoutes(api.Group("/comments"))
	return router
}

func sampleComment() *models.Comment {
	return &models.Comment{
		CommentID: 5,
		Body:      "I hate streaming noses",
		ArticleID: 1,
		Author:    "icellusedkars",
		Votes:     0,
		CreatedAt: time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC),
	}
}

func TestCommentHandler_ListByArticle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		resp := dto.NewPaginatedCommentResponse([]models.Comment{*sampleComment()}, 11)
		mockService.On("ListByArticle", mock.Anything, int64(1), query.Page{Limit: 1, Number: 3}).Return(resp, nil)

		w := doJSON(router, http.MethodGet, "/api/articles/1/comments?limit=1&p=3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var got dto.PaginatedCommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 11, got.TotalCount)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "icellusedkars", got.Comments[0].Author)
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyForArticleWithoutComments", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("ListByArticle", mock.Anything, int64(4), query.Page{}).
			Return(dto.NewPaginatedCommentResponse(nil, 0), nil)

		w := doJSON(router, http.MethodGet, "/api/articles/4/comments", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"comments":[],"totalCount":0}`, w.Body.String())
	})

	t.Run("ArticleNotFound", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("ListByArticle", mock.Anything, int64(999), query.Page{}).
			Return(nil, errs.NotFound("article 999"))

		w := doJSON(router, http.MethodGet, "/api/articles/999/comments", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"Not found"}`, w.Body.String())
	})

	t.Run("Rejects_BadParams", func(t *testing.T) {
		for _, target := range []string{
			"/api/articles/abc/comments",
			"/api/articles/1/comments?limit=-3",
			"/api/articles/1/comments?p=x",
		} {
			mockService := new(MockCommentService)
			router := setupCommentRouter(mockService)

			w := doJSON(router, http.MethodGet, target, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			mockService.AssertNotCalled(t, "ListByArticle", mock.Anything, mock.Anything, mock.Anything)
		}
	})
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		req := dto.CreateCommentRequest{Username: "butter_bridge", Body: "Great read"}
		created := &models.Comment{CommentID: 19, Body: req.Body, ArticleID: 2, Author: req.Username}
		mockService.On("Create", mock.Anything, int64(2), req).Return(created, nil)

		w := doJSON(router, http.MethodPost, "/api/articles/2/comments", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got dto.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(19), got.Comment.CommentID)
		assert.Equal(t, "butter_bridge", got.Comment.Author)
		assert.Equal(t, 0, got.Comment.Votes)
		mockService.AssertExpectations(t)
	})

	t.Run("Rejects_BadBodies", func(t *testing.T) {
		for name, body := range map[string]string{
			"Empty":        `{}`,
			"MissingBody":  `{"username":"butter_bridge"}`,
			"ExtraKey":     `{"username":"butter_bridge","body":"hi","votes":10}`,
			"BodyNotText":  `{"username":"butter_bridge","body":42}`,
			"BlankBody":    `{"username":"butter_bridge","body":""}`,
			"NotAnObject":  `["butter_bridge","hi"]`,
			"MalformedRaw": `{"username":`,
		} {
			t.Run(name, func(t *testing.T) {
				mockService := new(MockCommentService)
				router := setupCommentRouter(mockService)

				w := doJSON(router, http.MethodPost, "/api/articles/1/comments", body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.JSONEq(t, `{"msg":"Bad request"}`, w.Body.String())
				mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("Create", mock.Anything, int64(1), mock.Anything).Return(nil, errs.NotFound("user %q", "ghost"))

		w := doJSON(router, http.MethodPost, "/api/articles/1/comments", `{"username":"ghost","body":"boo"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("Create", mock.Anything, int64(1), mock.Anything).Return(nil, &pgconn.PgError{Code: "23503"})

		w := doJSON(router, http.MethodPost, "/api/articles/1/comments", `{"username":"butter_bridge","body":"hi"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"Not found"}`, w.Body.String())
	})
}

func TestCommentHandler_GetByID(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	mockService.On("Get", mock.Anything, int64(5)).Return(sampleComment(), nil)
	mockService.On("Get", mock.Anything, int64(999)).Return(nil, errs.NotFound("comment 999"))

	w := doJSON(router, http.MethodGet, "/api/comments/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/comments/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/comments/five", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}

func TestCommentHandler_UpdateVotes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		updated := sampleComment()
		updated.Votes = 1
		mockService.On("UpdateVotes", mock.Anything, int64(5), int32(1)).Return(updated, nil)

		w := doJSON(router, http.MethodPatch, "/api/comments/5", dto.VoteRequest{IncVotes: int32Ptr(1)})

		assert.Equal(t, http.StatusOK, w.Code)
		var got dto.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Comment.Votes)
		mockService.AssertExpectations(t)
	})

	t.Run("BadBody", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		w := doJSON(router, http.MethodPatch, "/api/comments/5", `{"inc_votes":"up"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "UpdateVotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("UpdateVotes", mock.Anything, int64(999), int32(-1)).Return(nil, errs.NotFound("comment 999"))

		w := doJSON(router, http.MethodPatch, "/api/comments/999", `{"inc_votes":-1}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("Delete", mock.Anything, int64(5)).Return(nil)

		w := doJSON(router, http.MethodDelete, "/api/comments/5", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		mockService.On("Delete", mock.Anything, int64(999)).Return(errs.NotFound("comment 999"))

		w := doJSON(router, http.MethodDelete, "/api/comments/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"Not found"}`, w.Body.String())
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := new(MockCommentService)
		router := setupCommentRouter(mockService)

		w := doJSON(router, http.MethodDelete, "/api/comments/not-an-id", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
