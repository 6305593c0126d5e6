package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"employee-api/internal/core/auth"
	"employee-api/internal/core/config"
	"employee-api/internal/core/server"
	"employee-api/internal/service"
	"employee-api/internal/transport/http/handler"
	mdw "employee-api/internal/transport/http/middleware"
	resp "employee-api/internal/transport/http/response"
)

// Options 引擎装配参数；限流/超时等取 0 表示不启用
type Options struct {
	Name    string
	Version string
	Mode    string
	HTTP    config.HTTP
	Limits  config.Limits
}

func NewAPIEngine(l *zap.Logger, o Options, tokens *auth.TokenService, svc *service.EmployeeService) *gin.Engine {
	r := server.NewRouter(server.Options{Name: o.Name, Mode: o.Mode, CORSOrigins: o.HTTP.CORSOrigins})

	// 中间件
	r.Use(mdw.Recovery(l), mdw.RequestID(), mdw.Metrics(), mdw.AccessLog(l))
	if o.Limits.RPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(o.Limits.RPS), max(1, o.Limits.Burst)))
	}
	if o.Limits.MaxConcurrent > 0 {
		r.Use(mdw.ConcurrencyLimit(o.Limits.MaxConcurrent))
	}
	if o.HTTP.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(o.HTTP.MaxBodyBytes))
	}
	if o.HTTP.RequestTimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(o.HTTP.RequestTimeoutSec) * time.Second))
	}

	r.NoRoute(func(c *gin.Context) { resp.Error(c, resp.CodeNotFound, "") })

	// 服务信息 / 健康检查 / 指标
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": o.Name, "status": "running", "version": o.Version})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "healthy"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 登录（公开）；按 IP 限速
	public := api.Group("")
	if o.Limits.LoginRPS > 0 {
		public.Use(mdw.RateLimitPerIP(rate.Limit(o.Limits.LoginRPS), max(1, o.Limits.LoginBurst)))
	}
	handler.NewAuthHandler(tokens, l).Mount(public)

	// 员工资源（需鉴权）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(tokens))
	handler.NewEmployeeHandler(svc).Mount(authed)

	return r
}
