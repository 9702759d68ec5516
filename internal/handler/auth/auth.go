// File: internal/handler/auth/auth.go
package auth

import (
	"context"

	"nsleadprovider/internal/service"
)

// Authenticator 由 service.AuthService 實作
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}

const msgMissingFields = "email and password are required"
