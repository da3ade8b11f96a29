package validator

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/query"
)

// ParseID parses a positive integer path parameter.
func ParseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.InvalidInput("%s must be a positive integer, got %q", name, raw)
	}
	return id, nil
}

// ParsePage reads limit and p. Absent values keep their defaults.
func ParsePage(q url.Values) (query.Page, error) {
	var page query.Page

	if raw, ok := lookup(q, "limit"); ok {
		n, err := positiveInt("limit", raw)
		if err != nil {
			return page, err
		}
		page.Limit = n
	}
	if raw, ok := lookup(q, "p"); ok {
		n, err := positiveInt("p", raw)
		if err != nil {
			return page, err
		}
		page.Number = n
	}
	return page, nil
}

// ParseArticleListQuery validates topic, sort_by, order, limit and p.
func ParseArticleListQuery(q url.Values) (query.ArticleListQuery, error) {
	var out query.ArticleListQuery

	if raw, ok := lookup(q, "sort_by"); ok {
		col, ok := query.ParseSortColumn(raw)
		if !ok {
			return out, errs.InvalidInput("sort_by %q is not sortable", raw)
		}
		out.SortBy = col
	}
	if raw, ok := lookup(q, "order"); ok {
		dir, ok := query.ParseDirection(raw)
		if !ok {
			return out, errs.InvalidInput("order %q must be asc or desc", raw)
		}
		out.Order = dir
	}

	page, err := ParsePage(q)
	if err != nil {
		return out, err
	}
	out.Page = page
	out.Topic = q.Get("topic")
	return out, nil
}

// VoteDelta checks a PATCH body carrying inc_votes.
func VoteDelta(req dto.VoteRequest) (int32, error) {
	if req.IncVotes == nil {
		return 0, errs.InvalidInput("inc_votes is required")
	}
	return *req.IncVotes, nil
}

var commentKeys = []string{"username", "body"}

// NewComment accepts a decoded body with exactly username and body, both non-empty strings.
// Whitespace counts as content.
func NewComment(body map[string]any) (dto.CreateCommentRequest, error) {
	var out dto.CreateCommentRequest
	if len(body) != len(commentKeys) {
		return out, errs.InvalidInput("comment body must have exactly %v", commentKeys)
	}

	fields := make(map[string]string, len(commentKeys))
	for _, key := range commentKeys {
		raw, ok := body[key]
		if !ok {
			return out, errs.InvalidInput("comment %s is required", key)
		}
		s, ok := raw.(string)
		if !ok || s == "" {
			return out, errs.InvalidInput("comment %s must be a non-empty string", key)
		}
		fields[key] = s
	}

	out.Username = fields["username"]
	out.Body = fields["body"]
	return out, nil
}

// NewArticle checks required fields and the optional image URL.
func NewArticle(req dto.CreateArticleRequest) error {
	required := []struct{ name, value string }{
		{"title", req.Title},
		{"author", req.Author},
		{"body", req.Body},
		{"topic", req.Topic},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errs.InvalidInput("article %s is required", f.name)
		}
	}
	if req.ArticleImgURL != nil && !IsImageURL(*req.ArticleImgURL) {
		return errs.InvalidInput("article_img_url %q is not an image url", *req.ArticleImgURL)
	}
	return nil
}

// NewTopic requires a slug.
func NewTopic(req dto.CreateTopicRequest) error {
	if strings.TrimSpace(req.Slug) == "" {
		return errs.InvalidInput("topic slug is required")
	}
	return nil
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// IsImageURL reports whether raw is an absolute http(s) URL whose path names an image file.
// The query string is ignored.
func IsImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func lookup(q url.Values, key string) (string, bool) {
	vals, ok := q[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func positiveInt(name, raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n <= 0 {
		return 0, errs.InvalidInput("%s must be a positive integer, got %q", name, raw)
	}
	return int(n), nil
}
