package shortcode

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

const (
	// Charset 包含用于生成短码的所有字符
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// DefaultLength 是默认的短码长度
	DefaultLength = 7
)

var (
	ErrInvalidAlias  = errors.New("alias must be 3-32 characters of letters, digits, '-' or '_'")
	ErrReservedAlias = errors.New("alias is reserved")

	aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

	// 与服务路由冲突的保留字
	reserved = map[string]struct{}{
		"api":     {},
		"health":  {},
		"metrics": {},
		"swagger": {},
	}
)

// Generator 生成随机短码。不做唯一性检查，唯一性由存储层的唯一索引保证。
type Generator struct {
	length int
}

// NewGenerator 创建一个新的短码生成器实例
func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Generate 自定义别名非空时原样返回，否则生成随机短码
func (g *Generator) Generate(customAlias string) (string, error) {
	if customAlias != "" {
		return customAlias, nil
	}
	return g.generateRandomString(g.length)
}

// Length 返回随机短码长度
func (g *Generator) Length() int {
	return g.length
}

// generateRandomString 使用加密安全的随机数生成器生成一个给定长度的字符串
func (g *Generator) generateRandomString(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(Charset)))
	for i := range b {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = Charset[num.Int64()]
	}
	return string(b), nil
}

// ValidAlias 校验用户自定义别名
func ValidAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return ErrInvalidAlias
	}
	if _, ok := reserved[strings.ToLower(alias)]; ok {
		return ErrReservedAlias
	}
	return nil
}
