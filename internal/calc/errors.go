// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "errors"

// ErrorKind names the failure a calculation ran into.
type ErrorKind int

const (
	DivideByZero ErrorKind = iota + 1
	InvalidOperand
)

func (k ErrorKind) String() string {
	switch k {
	case DivideByZero:
		return "DivideByZero"
	case InvalidOperand:
		return "InvalidOperand"
	}
	return "Unknown"
}

// Sentinel errors for errors.Is checks against *Error values.
var (
	ErrDivideByZero   = errors.New("cannot divide by zero")
	ErrInvalidOperand = errors.New("invalid calculation")
	// ErrUnknownToken is returned for input that maps to no token. The
	// engine state is left untouched.
	ErrUnknownToken = errors.New("unknown token")
)

// Error is returned by the engine whenever a token could not be applied.
// By the time a caller sees it the engine has already been cleared.
type Error struct {
	Kind ErrorKind
	// MessageID is the i18n id of the user-facing message.
	MessageID string
	// Operand is the offending text, if any.
	Operand string
	Err     error
}

func (e *Error) Error() string {
	if e.Operand != "" {
		return e.sentinel().Error() + ": " + e.Operand
	}
	return e.sentinel().Error()
}

// Is lets errors.Is match an *Error against ErrDivideByZero and ErrInvalidOperand.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) sentinel() error {
	if e.Kind == DivideByZero {
		return ErrDivideByZero
	}
	return ErrInvalidOperand
}

func divideByZeroError() *Error {
	return &Error{Kind: DivideByZero, MessageID: "calc.error_divide_by_zero"}
}

func invalidOperandError(messageID, operand string, cause error) *Error {
	return &Error{Kind: InvalidOperand, MessageID: messageID, Operand: operand, Err: cause}
}
