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

type ArticleRepository interface {
	List(ctx context.Context, q query.ArticleListQuery) ([]models.Article, error)
	Count(ctx context.Context, q query.ArticleListQuery) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	IncrementVotes(ctx context.Context, id int64, delta int32) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

// articleRepository runs builder-generated SQL through pgx.
type articleRepository struct {
	db database.DBTX
}

func NewArticleRepository(db database.DBTX) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, q query.ArticleListQuery) ([]models.Article, error) {
	sql, args, err := q.ToSQL()
	if err != nil {
		return nil, errs.InvalidInput("%v", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	articles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Article, error) {
		var a models.Article
		err := row.Scan(&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (r *articleRepository) Count(ctx context.Context, q query.ArticleListQuery) (int, error) {
	sql, args := q.CountSQL()
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return int(total), nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	sql, args := query.ArticleByID(id)
	article, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("article %d", id)
		}
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

func (r *articleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args := query.ArticleExists(id)
	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check article %d: %w", id, err)
	}
	return exists, nil
}

// Create inserts article and fills in the generated columns.
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	sql, args := query.InsertArticle(article.Title, article.Topic, article.Author, article.Body, article.ArticleImgURL)
	created, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	*article = *created
	return nil
}

// IncrementVotes applies votes = votes + delta in one statement.
func (r *articleRepository) IncrementVotes(ctx context.Context, id int64, delta int32) (*models.Article, error) {
	sql, args := query.ArticleVotes(id, delta)
	article, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("article %d", id)
		}
		return nil, fmt.Errorf("vote on article %d: %w", id, err)
	}
	return article, nil
}

// Delete removes the article's comments and then the article in one transaction.
func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args := query.DeleteArticleComments(id)
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("delete comments of article %d: %w", id, err)
		}

		sql, args = query.DeleteArticle(id)
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("delete article %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return errs.NotFound("article %d", id)
		}
		return nil
	})
}

// scanArticle reads the single-article projection: list columns, body, comment_count.
func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.Body, &a.CommentCount)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
