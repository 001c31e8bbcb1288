package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve claims o error.
// Implementaciones: adapters/auth/jwtauth (HS256 local) y adapters/auth/remote (servicio IAM).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
