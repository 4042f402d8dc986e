// Package routes monta as rotas HTTP da API.
package routes

import (
	"github.com/Gisely-Aguiar/backend-vousher/controllers"
	"github.com/Gisely-Aguiar/backend-vousher/middleware"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/gin-gonic/gin"
)

// Controllers agrupa os handlers que Setup registra
type Controllers struct {
	Info         *controllers.InfoController
	Auth         *controllers.AuthController
	SystemUsers  *controllers.SystemUserController
	VoucherUsers *controllers.VoucherUserController
	Dev          *controllers.DevController // nil = rotas de dev desligadas
}

// Setup configura todas as rotas. As rotas /api/dev só existem se ctrls.Dev != nil.
func Setup(router *gin.Engine, tokens utils.TokenService, ctrls Controllers) {
	router.Use(middleware.Recovery(), middleware.Logger(), middleware.CORS())

	// Rotas PÚBLICAS
	router.GET("/", ctrls.Info.Index)
	router.GET("/health", ctrls.Info.Health)

	api := router.Group("/api")
	api.POST("/auth/login", ctrls.Auth.Login)

	if ctrls.Dev != nil {
		dev := api.Group("/dev")
		{
			dev.POST("/reset-db", ctrls.Dev.Reset)
			dev.GET("/users", ctrls.Dev.Users)
			dev.GET("/status", ctrls.Dev.Status)
		}
	}

	// Rotas PROTEGIDAS (requieren JWT)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/system-users", ctrls.SystemUsers.Create)

		protected.POST("/voucher-users", ctrls.VoucherUsers.Create)
		protected.GET("/voucher-users", ctrls.VoucherUsers.List)
		protected.GET("/voucher-users/search/:voucher_id", ctrls.VoucherUsers.FindByVoucherID)
	}
}
