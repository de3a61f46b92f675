package errors

import (
	stderrors "errors"
	"fmt"
)

type Code string

var (
	// common
	UnknownCode         Code = "1000400"
	MissingArgumentCode Code = "1000401"
	InvalidArgumentCode Code = "1000402"
	// config
	ConfigLoadCode      Code = "10020100"
	InvalidTemplateCode Code = "10020101"
	// output
	OutputUnavailableCode Code = "10020200"
	RenderFailedCode      Code = "10020201"
)

var codeMessageMaps = map[Code]string{
	UnknownCode:           "unknown error",
	MissingArgumentCode:   "missing argument",
	InvalidArgumentCode:   "invalid argument",
	ConfigLoadCode:        "unable to load config",
	InvalidTemplateCode:   "invalid line template",
	OutputUnavailableCode: "output unavailable",
	RenderFailedCode:      "render failed",
}

var (
	UnknownError           = FromCode(UnknownCode)
	MissingArgumentError   = FromCode(MissingArgumentCode)
	InvalidArgumentError   = FromCode(InvalidArgumentCode)
	ConfigLoadError        = FromCode(ConfigLoadCode)
	InvalidTemplateError   = FromCode(InvalidTemplateCode)
	OutputUnavailableError = FromCode(OutputUnavailableCode)
	RenderFailedError      = FromCode(RenderFailedCode)
)

type Error struct {
	Typ     string `json:"error"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error
}

func New(code Code, typ, message string) *Error {
	return &Error{
		Typ:     typ,
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: typ = %s, code = %s, message = %s", e.Typ, string(e.Code), e.Message)
}

// Is matches any *Error carrying the same code, so the package level
// sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewSweepError(code Code, message string) *Error {
	return &Error{Typ: "SweepError", Code: code, Message: message}
}

// Errorf builds a SweepError whose message is code's text followed by the
// formatted detail.
func Errorf(code Code, format string, args ...interface{}) *Error {
	return NewSweepError(code, code.String()+": "+fmt.Sprintf(format, args...))
}

// Wrap attaches err as the cause of a coded error. A nil err yields nil.
func Wrap(code Code, err error) *Error {
	if err == nil {
		return nil
	}
	e := NewSweepError(code, code.String()+": "+err.Error())
	e.cause = err
	return e
}

func FromError(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return Wrap(UnknownCode, err)
}

func FromCode(code Code) *Error {
	return NewSweepError(code, code.String())
}

func (code Code) String() string {
	if msg, ok := codeMessageMaps[code]; ok {
		return msg
	}
	return "code(" + string(code) + ")"
}
