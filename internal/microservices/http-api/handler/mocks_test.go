package handler_test

import (
	"context"

	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/handler"
	"newshub/internal/microservices/http-api/middleware"
	"newshub/internal/microservices/http-api/models"
	"newshub/internal/microservices/http-api/query"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICES ---

type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) List(ctx context.Context, q query.ArticleListQuery) (*dto.ArticleListResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ArticleListResponse), args.Error(1)
}

func (m *MockArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleService) Create(ctx context.Context, req dto.CreateArticleRequest) (*models.Article, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, id int64, delta int32) (*models.Article, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID int64, page query.Page) (*dto.PaginatedCommentResponse, error) {
	args := m.Called(ctx, articleID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedCommentResponse), args.Error(1)
}

func (m *MockCommentService) Get(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, articleID int64, req dto.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, articleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateVotes(ctx context.Context, commentID int64, delta int32) (*models.Comment, error) {
	args := m.Called(ctx, commentID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockTopicService struct {
	mock.Mock
}

func (m *MockTopicService) GetAll(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicService) Create(ctx context.Context, t *models.Topic) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// --- ROUTER SETUP ---

func newTestEngine() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorResponder(zerolog.Nop()))
	router.NoRoute(handler.NotFound)
	return router, router.Group("/api")
}
