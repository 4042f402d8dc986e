package controllers

import (
	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError escreve o envelope {success:false, error} com o status do erro.
// A causa interna só vai em "details" com o gin em modo debug (desenvolvimento).
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)

	resp := dto.ErrorResponse{
		Success: false,
		Error:   apperrors.MessageOf(err),
	}
	if status >= 500 {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		if gin.IsDebugging() {
			resp.Details = apperrors.Details(err)
		}
	}

	c.AbortWithStatusJSON(status, resp)
}
