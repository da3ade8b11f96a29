package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/models"
	"newshub/internal/microservices/http-api/query"
	"newshub/internal/microservices/http-api/repository"
)

type ArticleService interface {
	List(ctx context.Context, q query.ArticleListQuery) (*dto.ArticleListResponse, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, req dto.CreateArticleRequest) (*models.Article, error)
	UpdateVotes(ctx context.Context, id int64, delta int32) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

type articleService struct {
	articleRepo   repository.ArticleRepository
	topicRepo     repository.TopicRepository
	userRepo      repository.UserRepository
	defaultImgURL string
}

func NewArticleService(articleRepo repository.ArticleRepository, topicRepo repository.TopicRepository,
	userRepo repository.UserRepository, defaultImgURL string) ArticleService {
	return &articleService{
		articleRepo:   articleRepo,
		topicRepo:     topicRepo,
		userRepo:      userRepo,
		defaultImgURL: defaultImgURL,
	}
}

// List fetches the page, the unpaginated total and, when filtering, the topic's existence together.
// An unknown topic is NotFound; a known topic without articles is an empty page.
func (s *articleService) List(ctx context.Context, q query.ArticleListQuery) (*dto.ArticleListResponse, error) {
	var (
		articles    []models.Article
		total       int
		topicExists = true
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.articleRepo.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.articleRepo.Count(gctx, q)
		return err
	})
	if q.Topic != "" {
		g.Go(func() error {
			var err error
			topicExists, err = s.topicRepo.Exists(gctx, q.Topic)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !topicExists {
		return nil, errs.NotFound("topic %q", q.Topic)
	}
	return dto.NewArticleListResponse(articles, total), nil
}

func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// Create checks that author and topic exist before inserting.
func (s *articleService) Create(ctx context.Context, req dto.CreateArticleRequest) (*models.Article, error) {
	var authorExists, topicExists bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authorExists, err = s.userRepo.Exists(gctx, req.Author)
		return err
	})
	g.Go(func() error {
		var err error
		topicExists, err = s.topicRepo.Exists(gctx, req.Topic)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !authorExists {
		return nil, errs.NotFound("author %q", req.Author)
	}
	if !topicExists {
		return nil, errs.NotFound("topic %q", req.Topic)
	}

	article := &models.Article{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        req.Author,
		Body:          req.Body,
		ArticleImgURL: s.defaultImgURL,
	}
	if req.ArticleImgURL != nil {
		article.ArticleImgURL = *req.ArticleImgURL
	}

	// a concurrent delete of author or topic still surfaces as a foreign key violation
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) UpdateVotes(ctx context.Context, id int64, delta int32) (*models.Article, error) {
	return s.articleRepo.IncrementVotes(ctx, id, delta)
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	return s.articleRepo.Delete(ctx, id)
}
