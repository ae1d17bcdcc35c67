// Package errors provides error wrapping that carries structured [slog.Attr]
// annotations alongside the usual message chain. It re-exports the standard
// library helpers so callers only need one errors import.
package errors

import (
	"errors"
	"log/slog"
)

// annotatedError wraps an error with a message and structured attributes.
type annotatedError struct {
	err   error
	msg   string
	attrs []slog.Attr
}

// Error returns "msg: wrapped" or just the message for sentinels.
func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *annotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates a new sentinel error suitable for errors.Is comparisons.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg}
}

// Wrap annotates err with a message and optional structured attributes.
// The attributes are surfaced by [SlogError] when the error is logged.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{err: err, msg: msg, attrs: attrs}
}

// SlogError renders err as a log attribute, including every annotation
// collected along the wrap chain.
func SlogError(err error) slog.Attr {
	attrs := []any{slog.String("message", err.Error())}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if annotated, ok := e.(*annotatedError); ok {
			for _, attr := range annotated.attrs {
				attrs = append(attrs, attr)
			}
		}
	}
	return slog.Group("error", attrs...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
