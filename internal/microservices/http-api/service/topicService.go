package service

import (
	"context"
	"strings"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/models"
	"newshub/internal/microservices/http-api/repository"
)

type TopicService interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	Create(ctx context.Context, t *models.Topic) error
}

type topicService struct {
	repo repository.TopicRepository
}

func NewTopicService(r repository.TopicRepository) TopicService {
	return &topicService{repo: r}
}

func (s *topicService) GetAll(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return topics, nil
}

func (s *topicService) Create(ctx context.Context, t *models.Topic) error {
	t.Slug = strings.TrimSpace(t.Slug)
	if t.Slug == "" {
		return errs.InvalidInput("topic slug required")
	}
	return s.repo.Create(ctx, t)
}
