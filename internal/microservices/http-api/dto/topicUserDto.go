package dto

import (
	"newshub/internal/microservices/http-api/models"
)

type CreateTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type TopicListResponse struct {
	Topics []models.Topic `json:"topics"`
}

type TopicResponse struct {
	Topic models.Topic `json:"topic"`
}

type UserListResponse struct {
	Users []models.User `json:"users"`
}

type UserResponse struct {
	User models.User `json:"user"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Msg string `json:"msg"`
}
