package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

// ErrorMiddleware is the generic fallback for uncaught handler errors.
// It logs whatever accumulated on the context and answers with a fixed
// failure message, keeping the process alive.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled request error")
		}
		if !c.Writer.Written() {
			utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong!")
		}
	}
}
