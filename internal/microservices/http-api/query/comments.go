package query

const commentColumns = `comment_id, body, article_id, author, votes, created_at`

// CommentsByArticle pages through an article's comments, newest first.
func CommentsByArticle(articleID int64, page Page) (string, []any) {
	page = page.normalized()

	b := &Builder{}
	b.Write(`SELECT `, commentColumns, ` FROM comments WHERE article_id = `, b.Bind(articleID),
		` ORDER BY created_at DESC, comment_id DESC`,
		` LIMIT `, b.Bind(int64(page.Limit)), ` OFFSET `, b.Bind(page.Offset()))
	return b.Build()
}

func CommentCountByArticle(articleID int64) (string, []any) {
	b := &Builder{}
	b.Write(`SELECT COUNT(*) FROM comments WHERE article_id = `, b.Bind(articleID))
	return b.Build()
}

func CommentByID(id int64) (string, []any) {
	b := &Builder{}
	b.Write(`SELECT `, commentColumns, ` FROM comments WHERE comment_id = `, b.Bind(id))
	return b.Build()
}

func InsertComment(articleID int64, author, body string) (string, []any) {
	b := &Builder{}
	b.Write(`INSERT INTO comments (body, votes, author, article_id) VALUES (`,
		b.Bind(body), `, 0, `, b.Bind(author), `, `, b.Bind(articleID), `) RETURNING `, commentColumns)
	return b.Build()
}

func CommentVotes(id int64, delta int32) (string, []any) {
	b := &Builder{}
	b.Write(`UPDATE comments SET votes = votes + `, b.Bind(delta),
		` WHERE comment_id = `, b.Bind(id), ` RETURNING `, commentColumns)
	return b.Build()
}

func DeleteComment(id int64) (string, []any) {
	b := &Builder{}
	b.Write(`DELETE FROM comments WHERE comment_id = `, b.Bind(id))
	return b.Build()
}
