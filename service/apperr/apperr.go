// Package apperr holds the error codes shared by the services and mapped
// to responses by the controllers.
package apperr

import "errors"

type ErrCode string

const (
	ErrInvalidInput ErrCode = "INVALID_INPUT"
	ErrNotFound     ErrCode = "NOT_FOUND"
	ErrConflict     ErrCode = "CONFLICT"
	ErrUnavailable  ErrCode = "UNAVAILABLE"
	ErrInvalidState ErrCode = "INVALID_STATE"
	ErrInternal     ErrCode = "INTERNAL"
)

type codedError struct {
	code ErrCode
	msg  string
	err  error
}

func (e *codedError) Error() string {
	switch {
	case e.msg == "" && e.err == nil:
		return string(e.code)
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return e.msg + ": " + e.err.Error()
	}
}

func (e *codedError) Code() ErrCode { return e.code }
func (e *codedError) Unwrap() error { return e.err }

// Message is the client-safe part of the error; the cause is left out.
func (e *codedError) Message() string {
	if e.msg == "" {
		return string(e.code)
	}
	return e.msg
}

func New(code ErrCode, msg string) error { return &codedError{code: code, msg: msg} }

func Wrap(code ErrCode, msg string, err error) error {
	return &codedError{code: code, msg: msg, err: err}
}

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Message returns the client-facing message of a coded error, or "" for
// anything else.
func Message(err error) string {
	var me interface{ Message() string }
	if errors.As(err, &me) {
		return me.Message()
	}
	return ""
}

// Internal wraps err as ErrInternal unless it already carries a code.
func Internal(msg string, err error) error {
	if err == nil || Code(err) != "" {
		return err
	}
	return Wrap(ErrInternal, msg, err)
}
