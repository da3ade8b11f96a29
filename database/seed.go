package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type SeedTopic struct {
	Slug, Description string
}

type SeedUser struct {
	Username, Name, AvatarURL string
}

type SeedArticle struct {
	Title, Topic, Author, Body string
	CreatedAt                  time.Time
	Votes                      int
	ArticleImgURL              string
}

// SeedComment references its article by 1-based position in SeedData.Articles.
type SeedComment struct {
	Body      string
	Article   int
	Author    string
	Votes     int
	CreatedAt time.Time
}

type SeedData struct {
	Topics   []SeedTopic
	Users    []SeedUser
	Articles []SeedArticle
	Comments []SeedComment
}

// Seed drops and recreates the schema, then bulk-loads data with COPY.
// Articles are loaded in order so their generated ids match their positions.
func Seed(ctx context.Context, db *DB, data SeedData, logger zerolog.Logger) error {
	return db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := DropSchema(ctx, tx); err != nil {
			return err
		}
		if err := EnsureSchema(ctx, tx); err != nil {
			return err
		}

		topics := make([][]any, 0, len(data.Topics))
		for _, t := range data.Topics {
			topics = append(topics, []any{t.Slug, t.Description})
		}
		if err := copyRows(ctx, tx, "topics", []string{"slug", "description"}, topics); err != nil {
			return err
		}

		users := make([][]any, 0, len(data.Users))
		for _, u := range data.Users {
			users = append(users, []any{u.Username, u.Name, u.AvatarURL})
		}
		if err := copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, users); err != nil {
			return err
		}

		articles := make([][]any, 0, len(data.Articles))
		for _, a := range data.Articles {
			articles = append(articles, []any{a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, int32(a.Votes), a.ArticleImgURL})
		}
		if err := copyRows(ctx, tx, "articles",
			[]string{"title", "topic", "author", "body", "created_at", "votes", "article_img_url"}, articles); err != nil {
			return err
		}

		comments := make([][]any, 0, len(data.Comments))
		for _, c := range data.Comments {
			if c.Article < 1 || c.Article > len(data.Articles) {
				return fmt.Errorf("seed comment references article %d of %d", c.Article, len(data.Articles))
			}
			comments = append(comments, []any{c.Body, int64(c.Article), c.Author, int32(c.Votes), c.CreatedAt})
		}
		if err := copyRows(ctx, tx, "comments",
			[]string{"body", "article_id", "author", "votes", "created_at"}, comments); err != nil {
			return err
		}

		logger.Info().
			Int("topics", len(topics)).
			Int("users", len(users)).
			Int("articles", len(articles)).
			Int("comments", len(comments)).
			Msg("database seeded")
		return nil
	})
}

func copyRows(ctx context.Context, tx pgx.Tx, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy %s: %w", table, err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("copy %s: wrote %d of %d rows", table, n, len(rows))
	}
	return nil
}
