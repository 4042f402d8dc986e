package controllers

import (
	"net/http"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/middleware"
	"github.com/Gisely-Aguiar/backend-vousher/services"
	"github.com/gin-gonic/gin"
)

// SystemUserController expõe a criação de operadores
type SystemUserController struct {
	service services.SystemUserService
}

// NewSystemUserController crea el controlador de usuarios del sistema
func NewSystemUserController(service services.SystemUserService) *SystemUserController {
	return &SystemUserController{service: service}
}

// Create maneja POST /api/system-users (solo master)
func (ctrl *SystemUserController) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return
	}

	var req dto.CreateSystemUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidBody)
		return
	}

	profile, err := ctrl.service.CreateSystemUser(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateSystemUserResponse{
		Success: true,
		Message: "Usuário criado com sucesso",
		User:    *profile,
	})
}
