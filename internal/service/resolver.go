package service

import (
	"context"
	"errors"
	"time"

	"shorturl-analytics/pkg/metrics"

	"go.uber.org/zap"
)

// 点击写入的超时，客户端断开时仍会尝试写入
const clickWriteTimeout = 5 * time.Second

// Visitor 发起跳转的访客
type Visitor struct {
	IP        string
	UserAgent string
}

// Resolver 把短码解析为原始地址并记录点击
type Resolver struct {
	registry *Registry
	now      func() time.Time
	log      *zap.Logger
}

func NewResolver(registry *Registry, log *zap.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		now:      time.Now,
		log:      log.Named("resolver"),
	}
}

// Resolve 返回短码对应的原始地址。点击写入失败只记录日志，不影响跳转。
func (r *Resolver) Resolve(ctx context.Context, code string, v Visitor) (string, error) {
	link, err := r.registry.links.FindLinkByCode(ctx, code, false)
	if err != nil {
		err = translate(err, "URL")
		if errors.Is(err, ErrNotFound) {
			metrics.Redirects.WithLabelValues("not_found").Inc()
		}
		return "", err
	}

	clickCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), clickWriteTimeout)
	defer cancel()

	err = r.registry.RecordClick(clickCtx, code, ClickInput{
		Timestamp: r.now().UTC(),
		SourceIP:  v.IP,
		UserAgent: v.UserAgent,
	})
	if err != nil {
		metrics.ClickRecordFailures.Inc()
		r.log.Warn("记录点击失败", zap.String("short_code", code), zap.Error(err))
	}

	metrics.Redirects.WithLabelValues("found").Inc()
	return link.OriginalURL, nil
}
