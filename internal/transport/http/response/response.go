package response

import (
	"github.com/gin-gonic/gin"
)

// Detail 所有错误响应的统一结构
type Detail struct {
	Detail string `json:"detail"`
}

// Error 中止请求并写错误体（customMsg 为空时用状态码默认文案）
func Error(c *gin.Context, status int, customMsg string) {
	msg := customMsg
	if msg == "" {
		msg = CodeMsgMap[status]
	}
	if status == CodeUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, Detail{Detail: msg})
}

// Fail 按错误大类映射状态码；未分类错误统一 500，不向外暴露内部信息
func Fail(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == CodeServerError {
		_ = c.Error(err)
		Error(c, status, "")
		return
	}
	Error(c, status, err.Error())
}
