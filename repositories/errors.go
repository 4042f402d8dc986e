package repositories

import "errors"

var (
	// ErrNotFound indica que a consulta não encontrou nenhuma linha
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indica violação de índice único no INSERT
	ErrDuplicate = errors.New("duplicate key")
)
