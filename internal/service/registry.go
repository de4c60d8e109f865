package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"shorturl-analytics/internal/model"
	"shorturl-analytics/internal/shortcode"
	"shorturl-analytics/internal/store"
	"shorturl-analytics/pkg/metrics"

	"go.uber.org/zap"
)

// LinkStore 注册表依赖的存储操作
type LinkStore interface {
	CreateLink(ctx context.Context, link *model.Link) error
	CodeExists(ctx context.Context, code string) (bool, error)
	FindLinkByCode(ctx context.Context, code string, withClicks bool) (*model.Link, error)
	FindLinkByID(ctx context.Context, id uint) (*model.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID uint) ([]model.Link, error)
	DeleteLink(ctx context.Context, id uint) error
	AppendClick(ctx context.Context, code string, click *model.Click) error
}

// DeviceDetector 从 User-Agent 推断设备类型
type DeviceDetector interface {
	DeviceType(userAgent string) string
}

// CreateLinkInput 创建短链接的参数
type CreateLinkInput struct {
	OriginalURL string
	Title       string
	CustomAlias string
	OwnerID     *uint
}

// ClickInput 一次点击
type ClickInput struct {
	Timestamp time.Time
	SourceIP  string
	UserAgent string
}

// Registry 链接注册表
type Registry struct {
	links       LinkStore
	generator   *shortcode.Generator
	devices     DeviceDetector
	maxAttempts int
	log         *zap.Logger
}

// NewRegistry 创建注册表。devices 为 nil 时设备类型记为 unknown。
func NewRegistry(links LinkStore, generator *shortcode.Generator, devices DeviceDetector, maxAttempts int, log *zap.Logger) *Registry {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Registry{
		links:       links,
		generator:   generator,
		devices:     devices,
		maxAttempts: maxAttempts,
		log:         log.Named("registry"),
	}
}

// Create 校验输入并保存新链接。
// 别名的预检查只用于尽早报错，最终以唯一索引为准；随机短码冲突时换码重试。
func (r *Registry) Create(ctx context.Context, in CreateLinkInput) (*model.Link, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := validateURL(in.OriginalURL); err != nil {
		return nil, err
	}

	alias := in.CustomAlias
	if alias != "" {
		if in.OwnerID == nil {
			return nil, fmt.Errorf("%w: custom alias requires a logged-in user", ErrAuthorization)
		}
		if err := shortcode.ValidAlias(alias); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		taken, err := r.links.CodeExists(ctx, alias)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, aliasTaken(alias)
		}
	}

	attempts := r.maxAttempts
	if alias != "" {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		code, err := r.generator.Generate(alias)
		if err != nil {
			return nil, fmt.Errorf("generate short code: %w", err)
		}

		link := &model.Link{
			OriginalURL: in.OriginalURL,
			ShortCode:   code,
			Title:       title,
			OwnerID:     in.OwnerID,
		}
		if alias != "" {
			link.CustomAlias = &code
		}

		err = r.links.CreateLink(ctx, link)
		if err == nil {
			kind := "random"
			if alias != "" {
				kind = "alias"
			}
			metrics.LinksCreated.WithLabelValues(kind).Inc()
			r.log.Info("短链接已创建", zap.Uint("id", link.ID), zap.String("short_code", link.ShortCode))
			return link, nil
		}
		if !errors.Is(err, store.ErrDuplicate) {
			return nil, err
		}
		if alias != "" {
			// 预检查与插入之间被抢占
			return nil, aliasTaken(alias)
		}

		metrics.ShortCodeCollisions.Inc()
		r.log.Warn("短码冲突，重新生成", zap.String("short_code", code), zap.Int("attempt", attempt))
	}

	r.log.Error("短码重试次数用尽", zap.Int("attempts", attempts))
	return nil, ErrCodeExhausted
}

// FindByCode 按短码查找链接（含点击记录）
func (r *Registry) FindByCode(ctx context.Context, code string) (*model.Link, error) {
	link, err := r.links.FindLinkByCode(ctx, code, true)
	if err != nil {
		return nil, translate(err, "URL")
	}
	return link, nil
}

// FindByID 按 ID 查找链接（含点击记录）
func (r *Registry) FindByID(ctx context.Context, id uint) (*model.Link, error) {
	link, err := r.links.FindLinkByID(ctx, id)
	if err != nil {
		return nil, translate(err, "URL")
	}
	return link, nil
}

// FindByOwner 返回用户的全部链接，最新的在前
func (r *Registry) FindByOwner(ctx context.Context, ownerID uint) ([]model.Link, error) {
	return r.links.ListLinksByOwner(ctx, ownerID)
}

// Delete 删除链接及其点击记录，只有所有者可以删除
func (r *Registry) Delete(ctx context.Context, id, requesterID uint) error {
	link, err := r.links.FindLinkByID(ctx, id)
	if err != nil {
		return translate(err, "URL")
	}
	if !link.OwnedBy(requesterID) {
		return fmt.Errorf("%w: not authorized to delete this URL", ErrForbidden)
	}
	if err := r.links.DeleteLink(ctx, id); err != nil {
		return translate(err, "URL")
	}
	r.log.Info("短链接已删除", zap.Uint("id", id), zap.Uint("user_id", requesterID))
	return nil
}

// RecordClick 为短码追加一条点击记录，短码不存在时返回 ErrNotFound
func (r *Registry) RecordClick(ctx context.Context, code string, in ClickInput) error {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	click := &model.Click{
		Timestamp:  ts.UTC(),
		UserAgent:  in.UserAgent,
		DeviceType: "unknown",
	}
	if in.SourceIP != "" {
		ip := in.SourceIP
		click.SourceIP = &ip
	}
	if r.devices != nil {
		click.DeviceType = r.devices.DeviceType(in.UserAgent)
	}

	if err := r.links.AppendClick(ctx, code, click); err != nil {
		return translate(err, "URL")
	}
	return nil
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: original URL is required", ErrValidation)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: invalid URL format", ErrValidation)
	}
	return nil
}

func aliasTaken(alias string) error {
	return fmt.Errorf("%w: custom alias %q already in use", ErrConflict, alias)
}

// translate 把存储层的未找到错误转换为 ErrNotFound，what 用于错误信息
func translate(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s not found", ErrNotFound, what)
	}
	return err
}
