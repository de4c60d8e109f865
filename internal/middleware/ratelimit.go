package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"shorturl-analytics/internal/config"
	"shorturl-analytics/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	rateWindow      = time.Minute
	limiterIdleTTL  = 3 * time.Minute
	limiterMaxCount = 10000
)

// RateLimit 按客户端 IP 限流。配置了 Redis 时使用固定窗口计数，多实例共享；
// 否则或 Redis 出错时使用进程内令牌桶。
func RateLimit(redisClient *redis.Client, limitConfig *config.Limit, log *zap.Logger) gin.HandlerFunc {
	if !limitConfig.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	local := newLocalLimiter(limitConfig.Requests, limitConfig.Burst)
	log = log.Named("ratelimit")

	return func(c *gin.Context) {
		// 跳过特定路径
		for _, path := range limitConfig.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, path) {
				c.Next()
				return
			}
		}

		ip := c.ClientIP()
		allowed, backend := true, "memory"

		if redisClient != nil {
			ok, err := allowRedis(c.Request.Context(), redisClient, ip, limitConfig.Requests+limitConfig.Burst)
			if err == nil {
				allowed, backend = ok, "redis"
			} else {
				log.Warn("Redis 限流失败，使用本地限流", zap.Error(err))
				allowed = local.allow(ip)
			}
		} else {
			allowed = local.allow(ip)
		}

		if !allowed {
			metrics.RateLimited.WithLabelValues(backend).Inc()
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

// allowRedis 固定窗口计数，key 按分钟切分
func allowRedis(ctx context.Context, rdb *redis.Client, ip string, limit int64) (bool, error) {
	window := time.Now().Unix() / int64(rateWindow.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%d", ip, window)

	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rateWindow+5*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= limit, nil
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type localLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newLocalLimiter(perMinute, burst int64) *localLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &localLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(rateWindow / time.Duration(perMinute)),
		burst:    int(burst),
	}
}

func (l *localLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if len(l.visitors) >= limiterMaxCount {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.Allow()
}
