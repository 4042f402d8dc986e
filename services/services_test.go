package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/repositories/repotest"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/stretchr/testify/require"
)

// ============================================
// Helpers compartilhados pelos testes do pacote
// ============================================

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTokens() utils.TokenService {
	return utils.NewTokenService(testSecret, 8*time.Hour)
}

// seedUser grava um operador já com a senha preparada pelo checker
func seedUser(t *testing.T, store *repotest.Store, checker utils.PasswordChecker, username, password string, userType domain.UserType, active bool) domain.SystemUser {
	t.Helper()
	hash, err := checker.Hash(password)
	require.NoError(t, err)
	return store.AddSystemUser(domain.SystemUser{
		Username: username,
		Password: hash,
		Name:     "Test " + username,
		Email:    username + "@empresa.com",
		UserType: userType,
		IsActive: active,
	})
}

func actor(id uint, userType domain.UserType) domain.Identity {
	return domain.Identity{ID: id, Username: string(userType), UserType: userType}
}

// recordingPublisher guarda os eventos publicados
type recordingPublisher struct {
	mu        sync.Mutex
	published []domain.VoucherUser
	err       error
}

func (p *recordingPublisher) PublishVoucherCreated(_ context.Context, v *domain.VoucherUser) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, *v)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var errDB = errors.New("connection refused")
