// Package apperrors define a taxonomia de erros da API.
// Todo erro que chega ao cliente passa por aqui: o controller só precisa de
// StatusOf e MessageOf para montar a resposta.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind agrupa os erros pela categoria
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindToken      Kind = "token"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
)

// Error é o erro de domínio com o status HTTP correspondente
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidBody = &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: "JSON inválido"}

	// Login
	ErrMissingCredentials = &Error{Kind: KindAuth, Status: http.StatusBadRequest, Message: "Usuário e senha são obrigatórios"}
	ErrUserNotFound       = &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: "Usuário não encontrado"}
	ErrInvalidPassword    = &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: "Senha incorreta"}

	// Token
	ErrMissingToken = &Error{Kind: KindToken, Status: http.StatusUnauthorized, Message: "Token de acesso não fornecido"}
	ErrInvalidToken = &Error{Kind: KindToken, Status: http.StatusForbidden, Message: "Token inválido"}

	// Usuários do sistema
	ErrForbidden        = &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: "Apenas o usuário master pode criar novos usuários"}
	ErrMissingUserField = &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: "Todos os campos são obrigatórios"}
	ErrInvalidUserType  = &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: `user_type deve ser "administrador" ou "funcionario"`}
	ErrUsernameTaken    = &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: "Username já está em uso"}

	// Clientes / vouchers
	ErrMissingVoucherField = &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: "Nome, telefone, voucher_id e voucher_password são obrigatórios"}
	ErrVoucherNotFound     = &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: "Voucher não encontrado"}
)

// Store embrulha uma falha de persistência (sempre 500)
func Store(err error) *Error {
	return &Error{Kind: KindStore, Status: http.StatusInternalServerError, Message: "Erro interno do servidor", Err: err}
}

// StatusOf devolve o status HTTP de qualquer erro; desconhecidos viram 500
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf devolve a mensagem segura para o cliente, sem detalhes internos
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Erro interno do servidor"
}

// IsKind informa se err é um *Error da categoria indicada
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Details devolve a causa interna de um erro de persistência (ou "" se não houver)
func Details(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Err != nil {
		return appErr.Err.Error()
	}
	if appErr == nil && err != nil {
		return err.Error()
	}
	return ""
}
