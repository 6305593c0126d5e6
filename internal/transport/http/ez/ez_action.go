package ez

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	resp "employee-api/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string // 例："/auth/login"、"/employees/:id/"
	Binder  Binder
	Status  int // 成功状态码，默认 200；204 时不写响应体
	Handler func(c *gin.Context, in *I) (O, error)
}

// Register 在分组下注册动作；handler 返回的错误统一走 resp.Fail
func Register[I any, O any](g gin.IRoutes, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			bindFailed(c, bindErr)
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		if status == http.StatusNoContent {
			c.Status(status)
			return
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default: // 默认 POST
		g.POST(a.Path, h)
	}
}

// bindFailed 绑定错误 → 400（超出 MaxBodyBytes 时 413）
func bindFailed(c *gin.Context, err error) {
	var (
		tooLarge *http.MaxBytesError
		syntax   *json.SyntaxError
		typ      *json.UnmarshalTypeError
		verrs    validator.ValidationErrors
	)
	switch {
	case errors.As(err, &tooLarge):
		resp.Error(c, resp.CodeTooLarge, "")
	case errors.As(err, &verrs):
		resp.Error(c, resp.CodeBadRequest, "Missing or invalid field: "+strings.ToLower(verrs[0].Field()))
	case errors.As(err, &typ):
		resp.Error(c, resp.CodeBadRequest, "Invalid type for field: "+typ.Field)
	case errors.As(err, &syntax), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		resp.Error(c, resp.CodeBadRequest, "Invalid JSON body")
	default:
		resp.Error(c, resp.CodeBadRequest, "Invalid request")
	}
}

// AtoiDefault 解析正整数，失败或 < 1 时返回 def
func AtoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

// ParamID 解析路径上的数字 id；非法时返回 notFound
func ParamID(c *gin.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, notFound
	}
	return id, nil
}
