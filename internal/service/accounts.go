package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"shorturl-analytics/internal/model"
	"shorturl-analytics/internal/store"

	"go.uber.org/zap"
)

const minPasswordLength = 6

// UserStore 账户依赖的存储操作
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id uint) (*model.User, error)
}

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, error)
}

// AuthResult 注册或登录成功后的令牌与用户
type AuthResult struct {
	Token string
	User  *model.User
}

// Accounts 用户注册与登录
type Accounts struct {
	users  UserStore
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAccounts(users UserStore, tokens TokenIssuer, log *zap.Logger) *Accounts {
	return &Accounts{users: users, tokens: tokens, log: log.Named("accounts")}
}

// Register 创建用户并签发令牌，邮箱重复返回 ErrEmailTaken
func (a *Accounts) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	user := &model.User{Name: name, Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := a.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	a.log.Info("用户注册成功", zap.Uint("user_id", user.ID))
	return a.issue(user)
}

// Login 校验邮箱与密码，失败统一返回 ErrInvalidCredentials
func (a *Accounts) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := a.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return a.issue(user)
}

// Get 按 ID 查找用户
func (a *Accounts) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := a.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, translate(err, "user")
	}
	return user, nil
}

func (a *Accounts) issue(user *model.User) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
