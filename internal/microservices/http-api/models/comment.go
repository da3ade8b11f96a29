package models

import "time"

type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	Body      string    `json:"body" gorm:"not null;type:text"`
	ArticleID int64     `json:"article_id" gorm:"not null;index"`
	Author    string    `json:"author" gorm:"not null"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
