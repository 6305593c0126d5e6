package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-api/internal/core/auth"
	httpez "employee-api/internal/transport/http/ez"
)

type AuthHandler struct {
	tokens *auth.TokenService
	log    *zap.Logger
}

func NewAuthHandler(ts *auth.TokenService, l *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: ts, log: l}
}

// Mount POST /auth/login（公开）
func (h *AuthHandler) Mount(g gin.IRoutes) {
	httpez.Register(g, httpez.Action[loginIn, auth.Token]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (auth.Token, error) {
			tok, err := h.tokens.Login(*in.Username, *in.Password)
			if err != nil {
				h.log.Warn("login rejected", zap.String("ip", c.ClientIP()))
				return auth.Token{}, err
			}
			return tok, nil
		},
	})
}
