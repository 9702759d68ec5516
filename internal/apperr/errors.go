// File: internal/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 錯誤分類，決定回應的 HTTP 狀態碼
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error 帶有分類的應用程式錯誤
// Message 會直接回傳給呼叫端，Err 只用於伺服器端紀錄
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func Validation(msg string) error { return newError(KindValidation, msg, nil) }
func Conflict(msg string) error   { return newError(KindConflict, msg, nil) }
func Auth(msg string) error       { return newError(KindAuth, msg, nil) }
func Forbidden(msg string) error  { return newError(KindForbidden, msg, nil) }
func NotFound(msg string) error   { return newError(KindNotFound, msg, nil) }

// Persistence 包裝儲存層錯誤，原始錯誤不會外洩給客戶端
func Persistence(msg string, err error) error { return newError(KindPersistence, msg, err) }

// KindOf 取出錯誤鏈中的分類，未分類的錯誤視為 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf 取出可公開的錯誤訊息
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// HTTPStatus 將錯誤分類對應到 HTTP 狀態碼
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
