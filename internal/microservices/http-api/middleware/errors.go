package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"newshub/internal/errs"
	"newshub/internal/microservices/http-api/dto"
)

// ErrorResponder writes the {msg} body for the last error a handler attached with c.Error.
// Unexpected failures are logged with their full chain; the client only sees the generic message.
func ErrorResponder(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		resp := errs.Normalize(last.Err)
		if resp.Kind == errs.KindUnexpected {
			logger.Error().
				Err(last.Err).
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("unexpected error")
		} else {
			logger.Debug().
				Err(last.Err).
				Str("request_id", GetRequestID(c)).
				Str("kind", resp.Kind.String()).
				Msg("request rejected")
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(resp.Status, dto.ErrorResponse{Msg: resp.Msg})
	}
}
