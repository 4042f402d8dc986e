package utils

import (
	"errors"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken cobre assinatura errada, token expirado ou malformado
var ErrInvalidToken = errors.New("invalid token")

// Claims é o que guardamos DENTRO do token:
// a identidade do operador mais exp/iat
type Claims struct {
	domain.Identity
	jwt.RegisteredClaims
}

// TokenService emite e verifica tokens de sessão
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Verify(tokenString string) (*Claims, error)
}

// jwtTokenService assina com HS256 usando uma chave fixa do processo
type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService cria o serviço com a chave e a validade dos tokens
// A chave é definida uma vez na inicialização e nunca muda
func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &jwtTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue gera um token para o operador, válido por ttl a partir de agora
func (s *jwtTokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()

	claims := &Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify confere a assinatura e a expiração e devolve as claims
func (s *jwtTokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
