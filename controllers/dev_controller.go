package controllers

import (
	"net/http"

	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/services"
	"github.com/gin-gonic/gin"
)

// DevController expõe as rotas de bootstrap (só em desenvolvimento)
type DevController struct {
	service services.DevService
}

// NewDevController crea el controlador de desarrollo
func NewDevController(service services.DevService) *DevController {
	return &DevController{service: service}
}

// Reset maneja POST /api/dev/reset-db
func (ctrl *DevController) Reset(c *gin.Context) {
	resp, err := ctrl.service.ResetDatabase(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Users maneja GET /api/dev/users
func (ctrl *DevController) Users(c *gin.Context) {
	users, err := ctrl.service.ListSystemUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DevUsersResponse{Success: true, Users: users})
}

// Status maneja GET /api/dev/status
func (ctrl *DevController) Status(c *gin.Context) {
	resp, err := ctrl.service.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
