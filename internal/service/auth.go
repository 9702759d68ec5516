// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"strings"

	"nsleadprovider/internal/apperr"
	"nsleadprovider/internal/logging"
	"nsleadprovider/internal/model"
	"nsleadprovider/internal/store"
)

const msgInvalidCredentials = "invalid credentials"

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserRole(ctx context.Context, email string, role model.Role) error
}

// AuthService 負責註冊與登入，本身不保存任何 session 狀態
type AuthService struct {
	users  UserRepository
	tokens *TokenManager
}

func NewAuthService(users UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// AuthResult 為註冊或登入成功後的結果
type AuthResult struct {
	Token string
	User  *model.User
}

// Register 建立一般使用者並簽發 token；email 已存在時回傳 Conflict
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.Validation("email and password are required")
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("user already exists")
	case !errors.Is(err, store.ErrNotFound):
		return nil, apperr.Persistence("failed to register user", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, apperr.Persistence("failed to register user", err)
	}

	u, err := s.users.CreateUser(ctx, &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		// 並行註冊時由唯一鍵擋下
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("user already exists")
		}
		return nil, apperr.Persistence("failed to register user", err)
	}

	token, err := s.tokens.Issue(*u)
	if err != nil {
		return nil, apperr.Persistence("failed to issue token", err)
	}
	logging.FromContext(ctx).Info("user registered", "user_id", u.ID)
	return &AuthResult{Token: token, User: u}, nil
}

// Login 驗證帳密；查無帳號與密碼錯誤回傳相同訊息
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.Validation("email and password are required")
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ComparePasswordTimingSafe("", password)
			return nil, apperr.Auth(msgInvalidCredentials)
		}
		return nil, apperr.Persistence("failed to log in", err)
	}

	if !ComparePasswordTimingSafe(u.PasswordHash, password) {
		return nil, apperr.Auth(msgInvalidCredentials)
	}

	token, err := s.tokens.Issue(*u)
	if err != nil {
		return nil, apperr.Persistence("failed to issue token", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

// SetRole 供維運指令調整使用者角色
func (s *AuthService) SetRole(ctx context.Context, email string, role model.Role) error {
	if !role.Valid() {
		return apperr.Validation("invalid role")
	}
	if err := s.users.UpdateUserRole(ctx, email, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Persistence("failed to update role", err)
	}
	logging.FromContext(ctx).Info("user role changed", "email", email, "role", role)
	return nil
}
