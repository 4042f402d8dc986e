package controllers

import (
	"net/http"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/services"
	"github.com/gin-gonic/gin"
)

// AuthController maneja el login de los operadores
type AuthController struct {
	service services.AuthService
}

// NewAuthController crea el controlador de autenticación
func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login maneja POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidBody)
		return
	}

	// 2. Validar credenciales y emitir el token
	response, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. Token + perfil
	c.JSON(http.StatusOK, response)
}
