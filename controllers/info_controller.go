package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger é satisfeito por *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// InfoController responde GET / e GET /health
type InfoController struct {
	db              Pinger
	passwordHashing bool
}

// NewInfoController crea el controlador de estado del servicio
func NewInfoController(db Pinger, passwordHashing bool) *InfoController {
	return &InfoController{db: db, passwordHashing: passwordHashing}
}

// Index maneja GET /
func (ctrl *InfoController) Index(c *gin.Context) {
	resp := dto.InfoResponse{
		Success:   true,
		Message:   "API do Sistema de Vouchers",
		Timestamp: time.Now(),
	}
	if !ctrl.passwordHashing {
		resp.Warning = "MODO DESENVOLVIMENTO - SENHAS EM TEXTO PURO"
	}
	c.JSON(http.StatusOK, resp)
}

// Health maneja GET /health: ping no MySQL com timeout curto
func (ctrl *InfoController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctrl.db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}
