package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"employee-api/internal/core/auth"
	"employee-api/internal/domain"
	resp "employee-api/internal/transport/http/response"
)

// KeySubject 鉴权通过后令牌 subject 在 gin.Context 中的 key
const KeySubject = "sub"

// AuthJWT 校验 Authorization: Bearer <token>，失败一律 401
func AuthJWT(ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := ts.Validate(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			authFailures.WithLabelValues(reasonOf(err)).Inc()
			resp.Fail(c, err)
			return
		}
		c.Set(KeySubject, sub)
		c.Next()
	}
}

// bearerToken scheme 不区分大小写；其它 scheme 视为未携带令牌
func bearerToken(h string) string {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}

func reasonOf(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "unknown"
}
