package database

import (
	"context"
	"fmt"
)

// schema bootstraps an empty database. It is idempotent and is not a migration system.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS topics (
		slug VARCHAR PRIMARY KEY,
		description VARCHAR NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		avatar_url VARCHAR NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		article_id BIGSERIAL PRIMARY KEY,
		title VARCHAR NOT NULL,
		topic VARCHAR NOT NULL REFERENCES topics(slug),
		author VARCHAR NOT NULL REFERENCES users(username),
		body VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		votes INT NOT NULL DEFAULT 0,
		article_img_url VARCHAR NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		comment_id BIGSERIAL PRIMARY KEY,
		body VARCHAR NOT NULL,
		article_id BIGINT NOT NULL REFERENCES articles(article_id),
		author VARCHAR NOT NULL REFERENCES users(username),
		votes INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS comments_article_id_idx ON comments (article_id)`,
	`CREATE INDEX IF NOT EXISTS articles_topic_idx ON articles (topic)`,
}

var dropOrder = []string{"comments", "articles", "users", "topics"}

func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes every table, dependents first.
func DropSchema(ctx context.Context, db DBTX) error {
	for _, table := range dropOrder {
		if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
