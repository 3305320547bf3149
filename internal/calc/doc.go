// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calc implements the state machine behind Pocketkit's four-function
// calculator. An Engine consumes one Token at a time (digit, decimal point,
// operator, equals, clear, sign, percent or backspace) and returns the string
// the display should show afterwards.
//
// Operators chain strictly left to right without precedence, so the input
// 2 + 3 × 4 = shows 20. Errors such as division by zero are returned as
// *Error values after the engine has reset itself to the all-clear state;
// presenting them is left to the caller.
//
// The engine performs no I/O and is not safe for concurrent use. Each UI owns
// exactly one instance and drives it from its event loop.
package calc
