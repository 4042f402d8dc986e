package controllers

import (
	"net/http"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/middleware"
	"github.com/Gisely-Aguiar/backend-vousher/services"
	"github.com/gin-gonic/gin"
)

// VoucherUserController maneja los endpoints de clientes con voucher
type VoucherUserController struct {
	service services.VoucherUserService
}

// NewVoucherUserController crea el controlador de clientes
func NewVoucherUserController(service services.VoucherUserService) *VoucherUserController {
	return &VoucherUserController{service: service}
}

// Create maneja POST /api/voucher-users
func (ctrl *VoucherUserController) Create(c *gin.Context) {
	// 1. Quién registra
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return
	}

	// 2. Leer el JSON del body
	var req dto.CreateVoucherUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidBody)
		return
	}

	// 3. Guardar
	created, err := ctrl.service.CreateVoucherUser(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateVoucherUserResponse{
		Success: true,
		Message: "Cliente cadastrado com sucesso",
		Data:    *created,
	})
}

// FindByVoucherID maneja GET /api/voucher-users/search/:voucher_id
func (ctrl *VoucherUserController) FindByVoucherID(c *gin.Context) {
	view, err := ctrl.service.FindByVoucherID(c.Request.Context(), c.Param("voucher_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VoucherUserResponse{Success: true, User: view})
}

// List maneja GET /api/voucher-users?search=
func (ctrl *VoucherUserController) List(c *gin.Context) {
	views, err := ctrl.service.ListVoucherUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VoucherUserListResponse{
		Success: true,
		Data:    views,
		Count:   len(views),
	})
}
