package service

import (
	"context"
	"time"

	"shorturl-analytics/internal/analytics"
)

// Analytics 链接统计
type Analytics struct {
	links LinkStore
	now   func() time.Time
}

func NewAnalytics(links LinkStore) *Analytics {
	return &Analytics{links: links, now: time.Now}
}

// WithClock 替换时钟，测试用
func (a *Analytics) WithClock(now func() time.Time) *Analytics {
	a.now = now
	return a
}

// Summarize 汇总链接的点击数据
func (a *Analytics) Summarize(ctx context.Context, linkID uint) (*analytics.Summary, error) {
	link, err := a.links.FindLinkByID(ctx, linkID)
	if err != nil {
		return nil, translate(err, "URL")
	}
	summary := analytics.Summarize(link.Clicks, a.now())
	return &summary, nil
}
