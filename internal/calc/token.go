// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "fmt"

// Operator is a pending binary operation. The zero value means none.
type Operator string

const (
	NoOperator Operator = ""
	Add        Operator = "+"
	Subtract   Operator = "-"
	Multiply   Operator = "×"
	Divide     Operator = "÷"
)

// Valid reports whether op is one of the four arithmetic operators.
func (op Operator) Valid() bool {
	switch op {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// Kind identifies what a Token asks the engine to do.
type Kind int

const (
	KindDigit Kind = iota + 1
	KindDecimal
	KindOperator
	KindEquals
	KindClear
	KindSign
	KindPercent
	KindBackspace
)

var kindNames = map[Kind]string{
	KindDigit:     "digit",
	KindDecimal:   "decimal",
	KindOperator:  "operator",
	KindEquals:    "equals",
	KindClear:     "clear",
	KindSign:      "sign",
	KindPercent:   "percent",
	KindBackspace: "backspace",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is one discrete input event: a button press or a key stroke.
type Token struct {
	Kind     Kind
	Digit    byte
	Operator Operator
}

// Fixed tokens without a payload.
var (
	DecimalToken   = Token{Kind: KindDecimal}
	EqualsToken    = Token{Kind: KindEquals}
	ClearToken     = Token{Kind: KindClear}
	SignToken      = Token{Kind: KindSign}
	PercentToken   = Token{Kind: KindPercent}
	BackspaceToken = Token{Kind: KindBackspace}
)

// DigitToken returns the token for the ASCII digit d ('0'..'9').
func DigitToken(d byte) Token {
	return Token{Kind: KindDigit, Digit: d}
}

// OperatorToken returns the token selecting op.
func OperatorToken(op Operator) Token {
	return Token{Kind: KindOperator, Operator: op}
}

func (t Token) String() string {
	switch t.Kind {
	case KindDigit:
		return string(t.Digit)
	case KindOperator:
		return string(t.Operator)
	}
	return t.Kind.String()
}
