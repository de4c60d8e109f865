package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shorturl-analytics/internal/config"
	auth "shorturl-analytics/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	id, ok := UserID(c)
	c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewManager("test-secret", "test", 1)
	valid, err := tokens.GenerateToken(7, "u@example.com")
	require.NoError(t, err)
	foreign, err := auth.NewManager("other-secret", "test", 1).GenerateToken(7, "u@example.com")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/private", RequireAuth(tokens), whoami)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"bad signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"ok":true}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message"`)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewManager("test-secret", "test", 1)
	valid, err := tokens.GenerateToken(3, "u@example.com")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/maybe", OptionalAuth(tokens), whoami)

	tests := []struct {
		header string
		want   string
	}{
		{"", `{"id":0,"ok":false}`},
		{"Bearer garbage", `{"id":0,"ok":false}`},
		{"Bearer " + valid, `{"id":3,"ok":true}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, tt.want, w.Body.String())
	}
}

func TestRateLimit_Memory(t *testing.T) {
	cfg := &config.Limit{Enabled: true, Requests: 60, Burst: 2, SkipPaths: []string{"/health"}}

	router := gin.New()
	router.Use(RateLimit(nil, cfg, zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path, ip string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("/ping", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("/ping", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("/ping", "10.0.0.1"))

	// 其他 IP 不受影响
	assert.Equal(t, http.StatusOK, do("/ping", "10.0.0.2"))
	// 跳过的路径不计数
	assert.Equal(t, http.StatusOK, do("/health", "10.0.0.1"))
}

func TestRateLimit_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(nil, &config.Limit{Enabled: false}, zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestGinZapRecovery(t *testing.T) {
	router := gin.New()
	router.Use(GinZapRecovery(zap.NewNop(), true), GinZapLogger(zap.NewNop()))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
