package dto

import "time"

// ErrorResponse é o envelope de todo 4xx/5xx
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"` // Só em desenvolvimento
}

// InfoResponse é a resposta de GET /
type InfoResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Warning   string    `json:"warning,omitempty"`
}
