package handler

import (
	"net/http"

	"newshub/internal/microservices/http-api/dto"
	"newshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:username", h.GetByUsername)
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UserListResponse{Users: users})
}

// GetByUsername handles GET /api/users/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.svc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{User: *user})
}
