package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordChecker prepara senhas para gravação e compara no login
type PasswordChecker interface {
	Hash(password string) (string, error)
	Compare(stored, supplied string) bool
}

// NewPasswordChecker escolhe a estratégia conforme PASSWORD_HASHING.
// Com hashing desligado (só em desenvolvimento) a senha é gravada como veio.
func NewPasswordChecker(hashing bool) PasswordChecker {
	if hashing {
		return bcryptChecker{}
	}
	return plainChecker{}
}

type bcryptChecker struct{}

func (bcryptChecker) Hash(password string) (string, error) {
	return HashPassword(password)
}

func (bcryptChecker) Compare(stored, supplied string) bool {
	return CheckPasswordHash(supplied, stored)
}

type plainChecker struct{}

func (plainChecker) Hash(password string) (string, error) {
	return password, nil
}

func (plainChecker) Compare(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// HashPassword gera o hash bcrypt de uma senha
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifica se a senha corresponde ao hash salvo
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
