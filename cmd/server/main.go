// Package main 短链接与访问统计服务入口
//
//	@title			短链接与访问统计 API
//	@version		1.0
//	@description	短链接生成、跳转与点击统计服务
//	@host			localhost:5000
//	@BasePath		/
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shorturl-analytics/internal/config"
	"shorturl-analytics/internal/handler"
	"shorturl-analytics/internal/middleware"
	"shorturl-analytics/internal/service"
	"shorturl-analytics/internal/shortcode"
	"shorturl-analytics/internal/store"
	"shorturl-analytics/pkg/database"
	auth "shorturl-analytics/pkg/jwt"
	"shorturl-analytics/pkg/logger"
	"shorturl-analytics/pkg/redis"
	"shorturl-analytics/pkg/useragent"

	_ "shorturl-analytics/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "配置加载失败:", err)
		os.Exit(1)
	}

	log, err := logger.InitLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "日志初始化失败:", err)
		os.Exit(1)
	}
	defer func() {
		if err := log.Sync(); err != nil {
			fmt.Println("日志同步失败:", err)
		}
	}()
	sugaredLogger := logger.Sugar

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		sugaredLogger.Fatalf("数据库初始化失败: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugaredLogger.Errorf("关闭数据库连接失败: %v", err)
		}
	}()
	sugaredLogger.Infof("✅ 数据库连接成功 (%s)", cfg.Database.Driver)

	if err := database.AutoMigrate(db, log); err != nil {
		sugaredLogger.Fatalf("数据库迁移失败: %v", err)
	}
	sugaredLogger.Info("✅ 数据库迁移成功")

	rdb, err := redis.NewClient(&cfg.Cache)
	if err != nil {
		sugaredLogger.Warnf("缓存连接失败，限流退化为进程内实现: %v", err)
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				sugaredLogger.Errorf("关闭 Redis 连接失败: %v", err)
			}
		}()
		sugaredLogger.Info("✅ 缓存连接成功")
	}

	tokenManager := auth.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.ExpirationHours)

	st := store.New(db, log.Named("store"))
	registry := service.NewRegistry(st, shortcode.NewGenerator(cfg.ShortCode.Length), useragent.NewParser(), cfg.ShortCode.MaxAttempts, log)
	resolver := service.NewResolver(registry, log)
	analytics := service.NewAnalytics(st)
	accounts := service.NewAccounts(st, tokenManager, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		sugaredLogger.Fatalf("trusted_proxies 配置无效: %v", err)
	}
	router.Use(middleware.GinZapRecovery(log, true))
	router.Use(middleware.GinZapLogger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(rdb, &cfg.RateLimit, log))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(router,
		handler.NewURLHandler(registry, resolver, analytics, cfg.App.BaseURL, log),
		handler.NewAuthHandler(accounts, log),
		handler.NewHealthHandler(st, log),
		tokenManager,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		sugaredLogger.Infof("🚀 服务启动成功, 访问 %s", cfg.App.BaseURL)
		sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugaredLogger.Fatalf("服务启动失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("服务关闭失败", zap.Error(err))
		return
	}
	sugaredLogger.Info("服务已停止")
}
