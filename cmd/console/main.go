package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/api/handler"
	"github.com/Supakit1111/FiveM-Wab/internal/api/router"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
	"github.com/Supakit1111/FiveM-Wab/pkg/jwt"
	applogger "github.com/Supakit1111/FiveM-Wab/pkg/logger"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("控制台启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 会话存储（Redis 失败时降级为进程内存储）
	store, err := session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，会话降级为进程内存储（重启后需重新登录）", zap.Error(err))
		store = session.NewMemoryStore()
	}
	defer store.Close()

	// 4. 会话 JWT 管理器与远端 API 客户端
	jwtMgr := jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	api := httpapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(api)
	svc := service.NewService(cfg, repo, store, jwtMgr, logger)
	h := handler.NewHandler(cfg, svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, svc, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("控制台已关闭")
}
