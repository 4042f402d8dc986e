package services

import "github.com/go-playground/validator/v10"

// validate é compartilhado: o validator guarda cache das structs já vistas
var validate = validator.New()
