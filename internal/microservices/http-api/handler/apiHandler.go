package handler

import (
	"net/http"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"

	"github.com/gin-gonic/gin"
)

// Endpoints handles GET /api
func Endpoints(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Endpoints())
}

// NotFound answers any route the router does not know.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: errs.MsgNotFound})
}
