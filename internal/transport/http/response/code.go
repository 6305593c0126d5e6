package response

import (
	"errors"
	"net/http"

	"employee-api/internal/domain"
)

const (
	CodeBadRequest      = http.StatusBadRequest
	CodeUnauthorized    = http.StatusUnauthorized
	CodeNotFound        = http.StatusNotFound
	CodeTooLarge        = http.StatusRequestEntityTooLarge
	CodeTooManyRequests = http.StatusTooManyRequests
	CodeServerError     = http.StatusInternalServerError
	CodeUnavailable     = http.StatusServiceUnavailable
	CodeTimeout         = http.StatusGatewayTimeout
)

// CodeMsgMap 用于集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeBadRequest:      "Bad Request",
	CodeUnauthorized:    "Not authenticated",
	CodeNotFound:        "Not Found",
	CodeTooLarge:        "Request body too large",
	CodeTooManyRequests: "Too many requests",
	CodeServerError:     "Internal Server Error",
	CodeUnavailable:     "Server busy",
	CodeTimeout:         "Request timeout",
}

// StatusOf 领域错误大类 → HTTP 状态码
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, domain.ErrValidation):
		return CodeBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return CodeNotFound
	default:
		return CodeServerError
	}
}
