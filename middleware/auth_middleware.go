package middleware

import (
	"strings"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// IdentityKey é a chave do operador autenticado no contexto do gin
const IdentityKey = "identity"

// AuthMiddleware valida o JWT em cada request protegida.
// Sem header ou sem token -> 401; token inválido ou esquema diferente de Bearer -> 403.
// Em ambos os casos o handler não roda.
func AuthMiddleware(tokens utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obtener el header "Authorization"
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			abort(c, apperrors.ErrMissingToken)
			return
		}

		// Formato esperado: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if !strings.EqualFold(parts[0], "Bearer") || len(parts) > 2 {
			abort(c, apperrors.ErrInvalidToken)
			return
		}
		if len(parts) == 1 {
			abort(c, apperrors.ErrMissingToken)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			abort(c, apperrors.ErrInvalidToken)
			return
		}

		// Guardar la identidad para los handlers
		c.Set(IdentityKey, claims.Identity)
		c.Next()
	}
}

// GetIdentity devolve o operador autenticado (ok=false fora de rotas protegidas)
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

func abort(c *gin.Context, err *apperrors.Error) {
	c.AbortWithStatusJSON(err.Status, dto.ErrorResponse{Success: false, Error: err.Message})
}
