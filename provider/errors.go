package provider

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure modes owned by the registry.
type ErrorCode string

const (
	ErrCodeUnsupported  ErrorCode = "PROVIDER_UNSUPPORTED"   // 未注册的 provider 名称
	ErrCodeNotInstalled ErrorCode = "PROVIDER_NOT_INSTALLED" // 已注册但未链接绑定包
)

// Sentinels for errors.Is. A *Error matches the sentinel with the same code.
var (
	ErrUnsupported  = &Error{Code: ErrCodeUnsupported}
	ErrNotInstalled = &Error{Code: ErrCodeNotInstalled}
)

// Error is returned by Registry.ChatModel for lookup failures. Errors produced
// by a provider constructor are never converted to *Error.
type Error struct {
	Code     ErrorCode `json:"code"`
	Provider string    `json:"provider,omitempty"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// GetErrorCode extracts the error code from an error chain.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func unsupportedError(name string) *Error {
	return &Error{
		Code:     ErrCodeUnsupported,
		Provider: name,
		Message:  fmt.Sprintf("unsupported provider: %s", name),
	}
}

func notInstalledError(info Info) *Error {
	return &Error{
		Code:     ErrCodeNotInstalled,
		Provider: info.Name,
		Message: fmt.Sprintf("provider %q is not installed: add `import _ %q` to link %s",
			info.Name, info.Package, info.Model),
	}
}
