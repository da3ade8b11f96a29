package dto

import "newshub/internal/microservices/http-api/query"

// EndpointDoc describes one route in the GET /api document.
type EndpointDoc struct {
	Description     string         `json:"description"`
	Queries         []string       `json:"queries"`
	RequestBody     map[string]any `json:"requestBody,omitempty"`
	ExampleResponse map[string]any `json:"exampleResponse"`
}

type EndpointsResponse struct {
	Endpoints map[string]EndpointDoc `json:"endpoints"`
}

var exampleArticle = map[string]any{
	"title":           "Seafood substitutions are increasing",
	"topic":           "cooking",
	"author":          "weegembump",
	"body":            "Text from the article..",
	"created_at":      "2018-05-30T15:59:13.341Z",
	"votes":           0,
	"article_img_url": "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	"comment_count":   6,
	"article_id":      33,
}

var exampleComment = map[string]any{
	"comment_id": 1,
	"body":       "Oh, I've got compassion running out of my nose, pal!",
	"article_id": 9,
	"author":     "butter_bridge",
	"votes":      16,
	"created_at": "2020-04-06T12:17:00.000Z",
}

var exampleUser = map[string]any{
	"username":   "butter_bridge",
	"name":       "jonny",
	"avatar_url": "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
}

var exampleTopic = map[string]any{"slug": "football", "description": "Footie!"}

// Endpoints is the self-description served at GET /api.
func Endpoints() EndpointsResponse {
	listQueries := append([]string{"topic", "order", "limit", "p"}, sortByQueries()...)

	return EndpointsResponse{Endpoints: map[string]EndpointDoc{
		"GET /api": {
			Description:     "serves up a json representation of all the available endpoints of the api",
			Queries:         []string{},
			ExampleResponse: map[string]any{"endpoints": map[string]any{}},
		},
		"GET /api/topics": {
			Description:     "serves an array of all topics",
			Queries:         []string{},
			ExampleResponse: map[string]any{"topics": []any{exampleTopic}},
		},
		"POST /api/topics": {
			Description:     "adds a topic and serves the created topic",
			Queries:         []string{},
			RequestBody:     map[string]any{"slug": "topic name here", "description": "description here"},
			ExampleResponse: map[string]any{"topic": exampleTopic},
		},
		"GET /api/articles": {
			Description:     "serves a page of articles with the total number matching the filter",
			Queries:         listQueries,
			ExampleResponse: map[string]any{"articles": []any{withoutBody(exampleArticle)}, "totalCount": 1},
		},
		"POST /api/articles": {
			Description: "adds an article and serves it with votes and comment_count at zero",
			Queries:     []string{},
			RequestBody: map[string]any{
				"title": "Living in the shadow of a great man", "topic": "mitch", "author": "butter_bridge",
				"body": "I find this existence challenging", "article_img_url": "optional, defaults to a placeholder",
			},
			ExampleResponse: map[string]any{"article": exampleArticle},
		},
		"GET /api/articles/:article_id": {
			Description:     "serves a single article with its comment_count; render=html adds body_html",
			Queries:         []string{"render"},
			ExampleResponse: map[string]any{"article": exampleArticle},
		},
		"PATCH /api/articles/:article_id": {
			Description:     "increments the article's votes by inc_votes (may be negative) and serves the article",
			Queries:         []string{},
			RequestBody:     map[string]any{"inc_votes": 1},
			ExampleResponse: map[string]any{"article": exampleArticle},
		},
		"DELETE /api/articles/:article_id": {
			Description:     "deletes the article and all of its comments, responds 204 with no body",
			Queries:         []string{},
			ExampleResponse: map[string]any{},
		},
		"GET /api/articles/:article_id/comments": {
			Description:     "serves a page of the article's comments, newest first",
			Queries:         []string{"limit", "p"},
			ExampleResponse: map[string]any{"comments": []any{exampleComment}, "totalCount": 1},
		},
		"POST /api/articles/:article_id/comments": {
			Description:     "adds a comment to the article; the body must contain exactly username and body",
			Queries:         []string{},
			RequestBody:     map[string]any{"username": "butter_bridge", "body": "comment text"},
			ExampleResponse: map[string]any{"comment": exampleComment},
		},
		"GET /api/comments/:comment_id": {
			Description:     "serves a single comment",
			Queries:         []string{},
			ExampleResponse: map[string]any{"comment": exampleComment},
		},
		"PATCH /api/comments/:comment_id": {
			Description:     "increments the comment's votes by inc_votes and serves the comment",
			Queries:         []string{},
			RequestBody:     map[string]any{"inc_votes": -1},
			ExampleResponse: map[string]any{"comment": exampleComment},
		},
		"DELETE /api/comments/:comment_id": {
			Description:     "deletes the comment, responds 204 with no body",
			Queries:         []string{},
			ExampleResponse: map[string]any{},
		},
		"GET /api/users": {
			Description:     "serves an array of all users",
			Queries:         []string{},
			ExampleResponse: map[string]any{"users": []any{exampleUser}},
		},
		"GET /api/users/:username": {
			Description:     "serves a single user",
			Queries:         []string{},
			ExampleResponse: map[string]any{"user": exampleUser},
		},
	}}
}

func sortByQueries() []string {
	cols := query.SortColumns()
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, "sort_by="+c)
	}
	return out
}

func withoutBody(article map[string]any) map[string]any {
	out := make(map[string]any, len(article))
	for k, v := range article {
		if k != "body" {
			out[k] = v
		}
	}
	return out
}
