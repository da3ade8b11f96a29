package handler

import (
	"net/http"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/models"
	"newshub/internal/microservices/http-api/service"
	"newshub/internal/microservices/http-api/validator"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	svc service.TopicService
}

func NewTopicHandler(svc service.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

func (h *TopicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
}

// List handles GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.TopicListResponse{Topics: topics})
}

// Create handles POST /api/topics
func (h *TopicHandler) Create(c *gin.Context) {
	var in dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(errs.InvalidInput("topic body: %v", err))
		return
	}
	if err := validator.NewTopic(in); err != nil {
		_ = c.Error(err)
		return
	}

	topic := models.Topic{Slug: in.Slug, Description: in.Description}
	if err := h.svc.Create(c.Request.Context(), &topic); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.TopicResponse{Topic: topic})
}
