package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/controllers"
	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/events"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
	"github.com/Gisely-Aguiar/backend-vousher/repositories/repotest"
	"github.com/Gisely-Aguiar/backend-vousher/services"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test_jwt_secret_32_chars_minimum!"

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testApp struct {
	router *gin.Engine
	store  *repotest.Store
	tokens utils.TokenService
}

type appOptions struct {
	hashing   bool
	devRoutes bool
	pingErr   error
}

func newTestApp(opts appOptions) *testApp {
	store := repotest.NewStore()
	tokens := utils.NewTokenService(testSecret, 8*time.Hour)
	passwords := utils.NewPasswordChecker(opts.hashing)
	cache := repositories.NewVoucherCache("")

	authService := services.NewAuthService(store.SystemUsers(), tokens, passwords)
	systemUserService := services.NewSystemUserService(store.SystemUsers(), passwords)
	voucherService := services.NewVoucherUserService(store.VoucherUsers(), cache, events.NoopPublisher{})

	ctrls := Controllers{
		Info:         controllers.NewInfoController(fakePinger{err: opts.pingErr}, opts.hashing),
		Auth:         controllers.NewAuthController(authService),
		SystemUsers:  controllers.NewSystemUserController(systemUserService),
		VoucherUsers: controllers.NewVoucherUserController(voucherService),
	}
	if opts.devRoutes {
		devService := services.NewDevService(store.Dev(), store.SystemUsers(), store.VoucherUsers(), cache, passwords)
		ctrls.Dev = controllers.NewDevController(devService)
	}

	router := gin.New()
	Setup(router, tokens, ctrls)
	return &testApp{router: router, store: store, tokens: tokens}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, username, password string) dto.LoginResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestResetThenMasterLogin(t *testing.T) {
	app := newTestApp(appOptions{hashing: true, devRoutes: true})

	w := app.do(t, http.MethodPost, "/api/dev/reset-db", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reset := decode[dto.ResetResponse](t, w)
	assert.True(t, reset.Success)
	require.Len(t, reset.UsuariosCriados, 3)

	resp := app.login(t, "master", "Master@123")
	assert.True(t, resp.Success)
	assert.Equal(t, domain.UserTypeMaster, resp.User.UserType)

	claims, err := app.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeMaster, claims.UserType)
	assert.Equal(t, resp.User.ID, claims.Identity.ID)
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestLogin_Failures(t *testing.T) {
	app := newTestApp(appOptions{hashing: true, devRoutes: true})
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/dev/reset-db", "", nil).Code)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"missing password", dto.LoginRequest{Username: "master"}, http.StatusBadRequest, "Usuário e senha são obrigatórios"},
		{"unknown user", dto.LoginRequest{Username: "ghost", Password: "x"}, http.StatusUnauthorized, "Usuário não encontrado"},
		{"wrong password", dto.LoginRequest{Username: "master", Password: "master@123"}, http.StatusUnauthorized, "Senha incorreta"},
		{"malformed json", `{"username":`, http.StatusBadRequest, "JSON inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(t, http.MethodPost, "/api/auth/login", "", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			body := decode[dto.ErrorResponse](t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestProtectedRoutes_WithoutTokenNeverTouchStore(t *testing.T) {
	app := newTestApp(appOptions{devRoutes: true})

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/voucher-users"},
		{http.MethodPost, "/api/voucher-users"},
		{http.MethodGet, "/api/voucher-users/search/ABC123"},
		{http.MethodPost, "/api/system-users"},
	}

	for _, r := range routes {
		w := app.do(t, r.method, r.path, "", `{"name":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code, r.path)
		assert.Equal(t, "Token de acesso não fornecido", decode[dto.ErrorResponse](t, w).Error)

		w = app.do(t, r.method, r.path, "forged.token.value", `{"name":"x"}`)
		assert.Equal(t, http.StatusForbidden, w.Code, r.path)
		assert.Equal(t, "Token inválido", decode[dto.ErrorResponse](t, w).Error)
	}
	assert.Zero(t, app.store.Calls())
}

func TestVoucherLifecycle(t *testing.T) {
	app := newTestApp(appOptions{hashing: true, devRoutes: true})
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/dev/reset-db", "", nil).Code)
	token := app.login(t, "funcionario", "func123").Token

	// Busca antes do cadastro
	w := app.do(t, http.MethodGet, "/api/voucher-users/search/ABC123", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorResponse{Success: false, Error: "Voucher não encontrado"}, decode[dto.ErrorResponse](t, w))

	// Cadastro
	w = app.do(t, http.MethodPost, "/api/voucher-users", token, dto.CreateVoucherUserRequest{
		Name:            "Maria",
		Phone:           "11955554444",
		VoucherID:       "ABC123",
		VoucherPassword: "9f8e7d",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CreateVoucherUserResponse](t, w)
	assert.True(t, created.Success)
	assert.Equal(t, "ABC123", created.Data.VoucherID)
	assert.Equal(t, "9f8e7d", created.Data.VoucherPassword)

	// Campo faltando
	w = app.do(t, http.MethodPost, "/api/voucher-users", token, dto.CreateVoucherUserRequest{Name: "Sem telefone", VoucherID: "X", VoucherPassword: "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Busca exata com o nome de quem cadastrou
	w = app.do(t, http.MethodGet, "/api/voucher-users/search/ABC123", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[dto.VoucherUserResponse](t, w)
	require.NotNil(t, found.User)
	assert.Equal(t, created.Data.ID, found.User.ID)
	require.NotNil(t, found.User.RegisteredByName)
	assert.Equal(t, "Funcionário", *found.User.RegisteredByName)

	// Listagem com filtro
	w = app.do(t, http.MethodGet, "/api/voucher-users?search=555", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.VoucherUserListResponse](t, w)
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Data, 1)

	w = app.do(t, http.MethodGet, "/api/voucher-users?search=nada", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, w.Body.String())
}

func TestSystemUserCreation(t *testing.T) {
	app := newTestApp(appOptions{hashing: true, devRoutes: true})
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/dev/reset-db", "", nil).Code)
	master := app.login(t, "master", "Master@123").Token
	admin := app.login(t, "admin", "admin123").Token

	req := dto.CreateSystemUserRequest{
		Username: "caixa1",
		Password: "caixa@123",
		Name:     "Caixa Um",
		Email:    "caixa1@empresa.com",
		UserType: "funcionario",
	}

	t.Run("non-master is forbidden", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/system-users", admin, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Apenas o usuário master pode criar novos usuários", decode[dto.ErrorResponse](t, w).Error)
	})

	t.Run("master cannot create another master", func(t *testing.T) {
		bad := req
		bad.UserType = "master"
		w := app.do(t, http.MethodPost, "/api/system-users", master, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("master creates funcionario", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/system-users", master, req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[dto.CreateSystemUserResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "caixa1", resp.User.Username)
		assert.NotContains(t, w.Body.String(), "caixa@123")

		// O novo operador já consegue entrar
		login := app.login(t, "caixa1", "caixa@123")
		assert.Equal(t, domain.UserTypeFuncionario, login.User.UserType)
	})

	t.Run("username taken", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/system-users", master, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username já está em uso", decode[dto.ErrorResponse](t, w).Error)
	})
}

func TestDevStatusIsIdempotent(t *testing.T) {
	app := newTestApp(appOptions{devRoutes: true})
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/dev/reset-db", "", nil).Code)

	first := decode[dto.StatusResponse](t, app.do(t, http.MethodGet, "/api/dev/status", "", nil))
	second := decode[dto.StatusResponse](t, app.do(t, http.MethodGet, "/api/dev/status", "", nil))

	assert.Equal(t, int64(3), first.SystemUsers)
	assert.Equal(t, int64(0), first.VoucherUsers)
	assert.Equal(t, first.SystemUsers, second.SystemUsers)
	assert.Equal(t, first.VoucherUsers, second.VoucherUsers)

	users := decode[dto.DevUsersResponse](t, app.do(t, http.MethodGet, "/api/dev/users", "", nil))
	require.Len(t, users.Users, 3)
	assert.Equal(t, "Master@123", users.Users[0].Password)
}

func TestDevRoutesDisabled(t *testing.T) {
	app := newTestApp(appOptions{devRoutes: false})

	for _, path := range []string{"/api/dev/status", "/api/dev/users"} {
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, path, "", nil).Code)
	}
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/dev/reset-db", "", nil).Code)
	assert.Zero(t, app.store.Calls())
}

func TestStoreErrorDetails(t *testing.T) {
	app := newTestApp(appOptions{devRoutes: true})
	app.store.Err = errors.New("dial tcp 127.0.0.1:3306: connection refused")

	w := app.do(t, http.MethodGet, "/api/dev/status", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "Erro interno do servidor", body.Error)
	assert.Empty(t, body.Details)

	gin.SetMode(gin.DebugMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	body = decode[dto.ErrorResponse](t, app.do(t, http.MethodGet, "/api/dev/status", "", nil))
	assert.Contains(t, body.Details, "connection refused")
}

func TestInfoAndHealth(t *testing.T) {
	t.Run("plaintext mode warns", func(t *testing.T) {
		app := newTestApp(appOptions{hashing: false})
		info := decode[dto.InfoResponse](t, app.do(t, http.MethodGet, "/", "", nil))
		assert.True(t, info.Success)
		assert.NotEmpty(t, info.Warning)
	})

	t.Run("hashing mode has no warning", func(t *testing.T) {
		app := newTestApp(appOptions{hashing: true})
		info := decode[dto.InfoResponse](t, app.do(t, http.MethodGet, "/", "", nil))
		assert.Empty(t, info.Warning)
	})

	t.Run("healthy", func(t *testing.T) {
		app := newTestApp(appOptions{})
		assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/health", "", nil).Code)
	})

	t.Run("database down", func(t *testing.T) {
		app := newTestApp(appOptions{pingErr: errors.New("down")})
		assert.Equal(t, http.StatusServiceUnavailable, app.do(t, http.MethodGet, "/health", "", nil).Code)
	})
}
