package service

import "errors"

// 业务错误，处理层用 errors.Is 映射为 HTTP 状态码
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrAuthorization      = errors.New("login required")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeExhausted      = errors.New("could not allocate a unique short code")
)
