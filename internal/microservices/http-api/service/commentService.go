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

type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64, page query.Page) (*dto.PaginatedCommentResponse, error)
	Get(ctx context.Context, commentID int64) (*models.Comment, error)
	Create(ctx context.Context, articleID int64, req dto.CreateCommentRequest) (*models.Comment, error)
	UpdateVotes(ctx context.Context, commentID int64, delta int32) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

// ListByArticle retrieves a page of comments for an article that must exist
func (s *commentService) ListByArticle(ctx context.Context, articleID int64, page query.Page) (*dto.PaginatedCommentResponse, error) {
	var (
		comments []models.Comment
		total    int
		exists   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exists, err = s.articleRepo.Exists(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.commentRepo.ListByArticle(gctx, articleID, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.commentRepo.CountByArticle(gctx, articleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !exists {
		return nil, errs.NotFound("article %d", articleID)
	}
	return dto.NewPaginatedCommentResponse(comments, total), nil
}

func (s *commentService) Get(ctx context.Context, commentID int64) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

// Create adds a comment once both the article and the author are known
func (s *commentService) Create(ctx context.Context, articleID int64, req dto.CreateCommentRequest) (*models.Comment, error) {
	var articleExists, userExists bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articleExists, err = s.articleRepo.Exists(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		userExists, err = s.userRepo.Exists(gctx, req.Username)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !articleExists {
		return nil, errs.NotFound("article %d", articleID)
	}
	if !userExists {
		return nil, errs.NotFound("user %q", req.Username)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    req.Username,
		Body:      req.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) UpdateVotes(ctx context.Context, commentID int64, delta int32) (*models.Comment, error) {
	return s.commentRepo.IncrementVotes(ctx, commentID, delta)
}

func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	return s.commentRepo.Delete(ctx, commentID)
}
