package models

import "time"

// Article is a row of articles plus the derived comment count.
// Body is omitted from list projections.
type Article struct {
	ArticleID     int64     `json:"article_id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null"`
	Topic         string    `json:"topic" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	Body          string    `json:"body,omitempty" gorm:"not null;type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Votes         int       `json:"votes" gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`
	CommentCount  int       `json:"comment_count" gorm:"-"`
}

func (Article) TableName() string {
	return "articles"
}
