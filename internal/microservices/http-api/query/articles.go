package query

const DefaultLimit = 10

// Page is a limit/page-number pair. Zero fields take the defaults.
type Page struct {
	Limit  int
	Number int
}

func (p Page) normalized() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Number <= 0 {
		p.Number = 1
	}
	return p
}

func (p Page) Offset() int64 {
	n := p.normalized()
	return int64(n.Number-1) * int64(n.Limit)
}

var articleFields = []string{"author", "title", "article_id", "topic", "created_at", "votes", "article_img_url"}

// articleColumns renders the shared projection, qualified by table when set.
func articleColumns(table string) string {
	b := &Builder{}
	for i, f := range articleFields {
		if i > 0 {
			b.Write(", ")
		}
		if table != "" {
			b.Write(table, ".")
		}
		b.Write(f)
	}
	sql, _ := b.Build()
	return sql
}

// ArticleListQuery lists articles with an optional topic filter.
// The zero value lists every topic by created_at descending, first page of DefaultLimit.
type ArticleListQuery struct {
	Topic  string
	SortBy SortColumn
	Order  Direction
	Page   Page
}

func (q ArticleListQuery) ToSQL() (string, []any, error) {
	sortExpr, err := q.SortBy.expr()
	if err != nil {
		return "", nil, err
	}
	dir, err := q.Order.keyword()
	if err != nil {
		return "", nil, err
	}

	b := &Builder{}
	b.Write(`SELECT `, articleColumns("articles"), `, CAST(COUNT(comments.comment_id) AS INT) AS comment_count `,
		`FROM articles LEFT JOIN comments ON comments.article_id = articles.article_id`)

	if q.Topic != "" {
		b.Write(` WHERE articles.topic = `, b.Bind(q.Topic))
	}

	b.Write(` GROUP BY articles.article_id`)
	b.Write(` ORDER BY `, sortExpr, ` `, dir)
	if q.SortBy != SortArticleID {
		b.Write(`, articles.article_id `, dir)
	}

	page := q.Page.normalized()
	b.Write(` LIMIT `, b.Bind(int64(page.Limit)), ` OFFSET `, b.Bind(page.Offset()))

	sql, args := b.Build()
	return sql, args, nil
}

// CountSQL counts the rows the listing matches, ignoring pagination.
func (q ArticleListQuery) CountSQL() (string, []any) {
	b := &Builder{}
	b.Write(`SELECT COUNT(*) FROM articles`)
	if q.Topic != "" {
		b.Write(` WHERE articles.topic = `, b.Bind(q.Topic))
	}
	return b.Build()
}

func ArticleByID(id int64) (string, []any) {
	b := &Builder{}
	b.Write(`SELECT `, articleColumns("articles"), `, articles.body, CAST(COUNT(comments.comment_id) AS INT) AS comment_count `,
		`FROM articles LEFT JOIN comments ON comments.article_id = articles.article_id `,
		`WHERE articles.article_id = `, b.Bind(id), ` GROUP BY articles.article_id`)
	return b.Build()
}

func ArticleExists(id int64) (string, []any) {
	b := &Builder{}
	b.Write(`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = `, b.Bind(id), `)`)
	return b.Build()
}

// ArticleVotes adds delta to the article's votes in a single statement and
// returns the updated row in the single-article projection.
func ArticleVotes(id int64, delta int32) (string, []any) {
	b := &Builder{}
	b.Write(`WITH updated AS (UPDATE articles SET votes = votes + `, b.Bind(delta),
		` WHERE article_id = `, b.Bind(id), ` RETURNING *) `,
		`SELECT `, articleColumns("updated"), `, updated.body, `,
		`(SELECT CAST(COUNT(*) AS INT) FROM comments WHERE comments.article_id = updated.article_id) AS comment_count `,
		`FROM updated`)
	return b.Build()
}

func InsertArticle(title, topic, author, body, imgURL string) (string, []any) {
	b := &Builder{}
	b.Write(`INSERT INTO articles (title, topic, author, body, article_img_url) VALUES (`,
		b.Bind(title), `, `, b.Bind(topic), `, `, b.Bind(author), `, `, b.Bind(body), `, `, b.Bind(imgURL),
		`) RETURNING `, articleColumns(""), `, body, 0 AS comment_count`)
	return b.Build()
}

// DeleteArticleComments and DeleteArticle run in that order inside one transaction.
func DeleteArticleComments(id int64) (string, []any) {
	b := &Builder{}
	b.Write(`DELETE FROM comments WHERE article_id = `, b.Bind(id))
	return b.Build()
}

func DeleteArticle(id int64) (string, []any) {
	b := &Builder{}
	b.Write(`DELETE FROM articles WHERE article_id = `, b.Bind(id))
	return b.Build()
}
