package middleware

import (
	"net/http"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger registra método, rota, status e latência de cada request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery converte panics em 500 sem expor o stack ao cliente
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Success: false,
					Error:   "Erro interno do servidor",
				})
			}
		}()
		c.Next()
	}
}
