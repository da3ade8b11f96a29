package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"newshub/database"
	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/models"
	"newshub/internal/microservices/http-api/query"
)

type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64, page query.Page) ([]models.Comment, error)
	CountByArticle(ctx context.Context, articleID int64) (int, error)
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	IncrementVotes(ctx context.Context, commentID int64, delta int32) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentRepository struct {
	db database.DBTX
}

func NewCommentRepository(db database.DBTX) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle retrieves one page of an article's comments, newest first
func (r *commentRepository) ListByArticle(ctx context.Context, articleID int64, page query.Page) ([]models.Comment, error) {
	sql, args := query.CommentsByArticle(articleID, page)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments of article %d: %w", articleID, err)
	}
	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Comment, error) {
		c, err := scanComment(row)
		if err != nil {
			return models.Comment{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list comments of article %d: %w", articleID, err)
	}
	return comments, nil
}

func (r *commentRepository) CountByArticle(ctx context.Context, articleID int64) (int, error) {
	sql, args := query.CommentCountByArticle(articleID)
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count comments of article %d: %w", articleID, err)
	}
	return int(total), nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	sql, args := query.CommentByID(commentID)
	comment, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("comment %d", commentID)
		}
		return nil, fmt.Errorf("get comment %d: %w", commentID, err)
	}
	return comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	sql, args := query.InsertComment(comment.ArticleID, comment.Author, comment.Body)
	created, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	*comment = *created
	return nil
}

func (r *commentRepository) IncrementVotes(ctx context.Context, commentID int64, delta int32) (*models.Comment, error) {
	sql, args := query.CommentVotes(commentID, delta)
	comment, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("comment %d", commentID)
		}
		return nil, fmt.Errorf("vote on comment %d: %w", commentID, err)
	}
	return comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	sql, args := query.DeleteComment(commentID)
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("comment %d", commentID)
	}
	return nil
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
