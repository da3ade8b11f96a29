package query

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSort      = errors.New("query: invalid sort column")
	ErrInvalidDirection = errors.New("query: invalid sort direction")
)

// SortColumn enumerates the columns an article listing may be ordered by.
type SortColumn uint8

const (
	SortCreatedAt SortColumn = iota
	SortArticleID
	SortTitle
	SortTopic
	SortAuthor
	SortBody
	SortVotes
	SortArticleImgURL
	SortCommentCount

	sortColumnCount
)

var sortColumnNames = [sortColumnCount]string{
	SortCreatedAt:     "created_at",
	SortArticleID:     "article_id",
	SortTitle:         "title",
	SortTopic:         "topic",
	SortAuthor:        "author",
	SortBody:          "body",
	SortVotes:         "votes",
	SortArticleImgURL: "article_img_url",
	SortCommentCount:  "comment_count",
}

// ParseSortColumn returns the column named by s, or false if s is not sortable.
func ParseSortColumn(s string) (SortColumn, bool) {
	for i, name := range sortColumnNames {
		if name == s {
			return SortColumn(i), true
		}
	}
	return 0, false
}

func (c SortColumn) Valid() bool {
	return c < sortColumnCount
}

func (c SortColumn) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return sortColumnNames[c]
}

// expr is the SQL expression this column orders by.
func (c SortColumn) expr() (string, error) {
	if !c.Valid() {
		return "", ErrInvalidSort
	}
	if c == SortCommentCount {
		return "comment_count", nil
	}
	return "articles." + sortColumnNames[c], nil
}

// SortColumns lists every accepted sort_by value.
func SortColumns() []string {
	out := make([]string, len(sortColumnNames))
	copy(out, sortColumnNames[:])
	return out
}

type Direction uint8

const (
	Desc Direction = iota
	Asc
)

func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return 0, false
}

func (d Direction) keyword() (string, error) {
	switch d {
	case Asc:
		return "ASC", nil
	case Desc:
		return "DESC", nil
	}
	return "", ErrInvalidDirection
}

func (d Direction) String() string {
	kw, err := d.keyword()
	if err != nil {
		return "invalid"
	}
	return strings.ToLower(kw)
}
