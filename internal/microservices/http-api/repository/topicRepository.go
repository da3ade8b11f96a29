package repository

import (
	"context"
	"fmt"

	"newshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	Create(ctx context.Context, t *models.Topic) error
	Exists(ctx context.Context, slug string) (bool, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	var list []models.Topic
	if err := r.db.WithContext(ctx).Order("slug asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}
	return list, nil
}

func (r *topicRepository) Create(ctx context.Context, t *models.Topic) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *topicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Topic{}).Where("slug = ?", slug).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check topic %q: %w", slug, err)
	}
	return n > 0, nil
}
