package auth

import "errors"

// ErrInvalidToken lo devuelven los verifiers cuando el token no es aceptable.
var ErrInvalidToken = errors.New("invalid token")

// Claims representa la información extraída del token.
// UserID es el valor que termina en created_by de cada registro.
type Claims struct {
	UserID string
	Email  string
	Name   string
}
