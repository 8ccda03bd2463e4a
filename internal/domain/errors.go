package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// ErrScopeNotRooted означает, что секцию виджета пытались отрисовать без
// области отображения, созданной через widget.NewScope. Это ошибка сборки
// кода, а не пользовательских данных.
var ErrScopeNotRooted = errors.New("widget sections must be rendered within a scope created by NewScope")

// AppError доменная ошибка с кодом для клиента.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ошибки, если в цепочке есть AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}
