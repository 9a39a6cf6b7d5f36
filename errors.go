package tinysoft

import (
	"errors"
	"fmt"
)

// 预定义错误
var (
	ErrLoginFailed     = errors.New("tinysoft: login failed")
	ErrNoDialer        = errors.New("tinysoft: no session dialer configured")
	ErrInvalidInterval = errors.New("tinysoft: invalid interval")
	ErrInvalidSymbol   = errors.New("tinysoft: invalid symbol")
)

// Error 数据服务错误类型
type Error struct {
	Op   string // 操作名
	Err  error  // 原始错误
	Code string // 错误码
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tinysoft: %s failed [%s]: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("tinysoft: %s failed: %v", e.Op, e.Err)
}

// Unwrap 实现 errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError 创建新的错误
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewErrorWithCode 创建带错误码的错误
func NewErrorWithCode(op string, code string, err error) *Error {
	return &Error{
		Op:   op,
		Code: code,
		Err:  err,
	}
}
