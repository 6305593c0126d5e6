package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"employee-api/internal/core/auth"
	"employee-api/internal/core/cache"
	"employee-api/internal/core/config"
	"employee-api/internal/core/database"
	"employee-api/internal/core/logger"
	"employee-api/internal/core/server"
	"employee-api/internal/domain"
	"employee-api/internal/repo"
	"employee-api/internal/service"
	"employee-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.NewWithOptions(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.File.Enable,
			Filename:   cfg.Log.File.Filename,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	// 存储（失败会直接 Fatal）
	store, closeStore := mustOpenStore(cfg, log)
	defer closeStore()

	// 令牌服务
	tokens, err := auth.NewTokenService(auth.Options{
		Secret:       cfg.JWT.Secret,
		Issuer:       cfg.JWT.Issuer,
		TTL:          time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		Username:     cfg.Auth.Username,
		Password:     cfg.Auth.Password,
		PasswordHash: cfg.Auth.PasswordHash,
	})
	if err != nil {
		log.Fatal("token service", zap.Error(err))
	}

	svc := service.NewEmployeeService(store, log.Named("employees"))
	r := router.NewAPIEngine(log, router.Options{
		Name:    cfg.App.Name,
		Version: cfg.App.Version,
		Mode:    server.ModeFor(cfg.App.Env),
		HTTP:    cfg.App.HTTP,
		Limits:  cfg.App.Limits,
	}, tokens, svc)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
		logger.ToStdLogger(log, zapcore.ErrorLevel),
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("employee api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("employees", baseURL+"/api/employees/"),
		zap.String("store", cfg.DB.Driver),
	)

	// 异步启动
	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("employee api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("employee api stopped gracefully")
}

// mustOpenStore 按 db.driver 选存储；配置了 redis.addr 时在外层套读缓存
func mustOpenStore(cfg *config.Config, l *zap.Logger) (domain.EmployeeStore, func()) {
	var (
		store   domain.EmployeeStore
		closers []func()
	)
	if cfg.DB.Driver == "memory" {
		store = repo.NewMemoryRepo()
	} else {
		db, err := database.NewGorm(database.Opts{
			Driver:             cfg.DB.Driver,
			DSN:                cfg.DB.DSN,
			Username:           cfg.DB.Username,
			Password:           cfg.DB.Password,
			MaxOpenConns:       cfg.DB.MaxOpenConns,
			MaxIdleConns:       cfg.DB.MaxIdleConns,
			ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
			LogLevel:           cfg.DB.LogLevel,
		})
		if err != nil {
			l.Fatal("db open", zap.Error(err))
		}
		l.Info("database connected", zap.String("driver", cfg.DB.Driver))
		closers = append(closers, func() { _ = database.Close(db) })

		er := repo.NewEmployeeRepo(db)
		if cfg.DB.AutoMigrate {
			if err := er.AutoMigrate(); err != nil {
				l.Fatal("automigrate failed", zap.Error(err))
			}
			l.Info("automigrate done")
		}
		store = er
	}

	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := c.Ping(ctx); err != nil {
			// 缓存不可用不影响启动，读请求会直接回源
			l.Warn("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()
		closers = append(closers, func() { _ = c.Close() })
		store = repo.NewCachedRepo(store, c, time.Duration(cfg.Redis.TTLSec)*time.Second, l.Named("cache"))
	}

	return store, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}
