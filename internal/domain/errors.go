package domain

import (
	"errors"
	"strings"
)

// 错误大类，HTTP 层按大类映射状态码
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
)

// Error 具体的业务错误：Kind 为所属大类，Code 为机器可读的短码
type Error struct {
	Kind error
	Code string
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is 让 errors.Is(err, ErrValidation) 这类大类判断成立
func (e *Error) Is(target error) bool { return target == e.Kind }

// 认证
var (
	ErrInvalidCredentials = &Error{Kind: ErrUnauthorized, Code: "invalid_credentials", Msg: "Invalid username or password"}
	ErrMissingToken       = &Error{Kind: ErrUnauthorized, Code: "missing_token", Msg: "Not authenticated"}
	ErrMalformedToken     = &Error{Kind: ErrUnauthorized, Code: "malformed_token", Msg: "Could not validate credentials"}
	ErrTokenExpired       = &Error{Kind: ErrUnauthorized, Code: "token_expired", Msg: "Token has expired"}
)

// 校验
var (
	ErrEmptyName      = &Error{Kind: ErrValidation, Code: "empty_name", Msg: "Name must not be empty"}
	ErrNameTooLong    = &Error{Kind: ErrValidation, Code: "name_too_long", Msg: "Name must be at most 255 characters"}
	ErrInvalidEmail   = &Error{Kind: ErrValidation, Code: "invalid_email", Msg: "Invalid email address"}
	ErrInvalidEnum    = &Error{Kind: ErrValidation, Code: "invalid_enum", Msg: "Invalid department or role"}
	ErrDuplicateEmail = &Error{Kind: ErrValidation, Code: "duplicate_email", Msg: "Email already registered"}
)

// ErrEmployeeNotFound 记录不存在
var ErrEmployeeNotFound = &Error{Kind: ErrNotFound, Code: "not_found", Msg: "Employee not found"}

// ErrStorageConflict 存储层写入时唯一约束冲突，由服务层翻译为 ErrDuplicateEmail
var ErrStorageConflict = errors.New("storage: unique constraint violated")

// EnumError 携带具体字段的枚举错误，errors.Is(err, ErrInvalidEnum) 仍成立
type EnumError struct {
	Field   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return "Invalid " + e.Field + ". Must be one of: " + strings.Join(e.Allowed, ", ")
}

func (e *EnumError) Is(target error) bool { return target == ErrInvalidEnum || target == ErrValidation }
