package model

import (
	"errors"
	"fmt"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Kind classifies an engine failure
type Kind string

const (
	KindInvalidMnemonic       Kind = "InvalidMnemonic"
	KindInvalidLength         Kind = "InvalidLength"
	KindInvalidSeedLength     Kind = "InvalidSeedLength"
	KindUnsupportedDerivation Kind = "UnsupportedDerivation"
	KindInvalidKey            Kind = "InvalidKey"
	KindInvalidAddress        Kind = "InvalidAddress"
	KindMalformedTransaction  Kind = "MalformedTransaction"
	KindUnsupportedParameter  Kind = "UnsupportedParameter"
	KindUnsupportedToken      Kind = "UnsupportedToken"
	KindSignerNotFound        Kind = "SignerNotFound"
	KindEmptySignerSet        Kind = "EmptySignerSet"
	KindAuthenticationFailed  Kind = "AuthenticationFailed"
	KindNoValidAddress        Kind = "NoValidAddress"

	KindUnsupportedChain     Kind = "UnsupportedChain"
	KindUnsupportedOperation Kind = "UnsupportedOperation"
	KindMultipleSigners      Kind = "MultipleSigners"
	KindInvalidAmount        Kind = "InvalidAmount"
	KindMissingParameters    Kind = "MissingParameters"
	KindCancelled            Kind = "Cancelled"
)

// Error is a classified engine error.
// Message never contains key material.
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

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same Kind, so sentinel comparisons work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// NewError creates an Error of the given kind
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates an Error of the given kind with a formatted message
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error of the given kind around a cause
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind checks if err carries the given Kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
