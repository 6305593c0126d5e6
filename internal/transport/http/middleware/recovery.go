package middleware

import (
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "employee-api/internal/transport/http/response"
)

// Recovery panic 记入 zap（带堆栈），对外返回通用 500
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, _ any) {
		resp.Error(c, resp.CodeServerError, "")
	})
}
