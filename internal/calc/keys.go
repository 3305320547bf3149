// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"strings"
)

// ButtonRows is the calculator's button grid, top to bottom.
var ButtonRows = [][]string{
	{"C", "±", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", "00", ".", "="},
}

// ParseLabel maps a button label to the tokens it produces. The "00" button
// produces two zero digits.
func ParseLabel(label string) ([]Token, error) {
	switch label {
	case "00":
		return []Token{DigitToken('0'), DigitToken('0')}, nil
	case ".":
		return []Token{DecimalToken}, nil
	case "+", "-", "×", "÷":
		return []Token{OperatorToken(Operator(label))}, nil
	case "=":
		return []Token{EqualsToken}, nil
	case "C":
		return []Token{ClearToken}, nil
	case "±":
		return []Token{SignToken}, nil
	case "%":
		return []Token{PercentToken}, nil
	}
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return []Token{DigitToken(label[0])}, nil
	}
	return nil, fmt.Errorf("%w: button %q", ErrUnknownToken, label)
}

// ParseKey maps a key name, as reported by the terminal, to a token.
// Unmapped keys report false.
func ParseKey(key string) (Token, bool) {
	switch key {
	case ".", ",":
		return DecimalToken, true
	case "+":
		return OperatorToken(Add), true
	case "-":
		return OperatorToken(Subtract), true
	case "*", "x":
		return OperatorToken(Multiply), true
	case "/":
		return OperatorToken(Divide), true
	case "enter", "=":
		return EqualsToken, true
	case "backspace":
		return BackspaceToken, true
	case "c", "C":
		return ClearToken, true
	case "%":
		return PercentToken, true
	case "n", "_":
		return SignToken, true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return DigitToken(key[0]), true
	}
	return Token{}, false
}

// wordTokens are spelled-out names accepted on the command line.
var wordTokens = map[string]Token{
	"clear":     ClearToken,
	"equals":    EqualsToken,
	"sign":      SignToken,
	"neg":       SignToken,
	"percent":   PercentToken,
	"backspace": BackspaceToken,
	"bs":        BackspaceToken,
	"plus":      OperatorToken(Add),
	"minus":     OperatorToken(Subtract),
	"times":     OperatorToken(Multiply),
	"div":       OperatorToken(Divide),
}

// ParseInput maps one command-line word to tokens. It accepts button labels,
// key names, spelled-out names and runs of digits/decimal points such as
// "12.5".
func ParseInput(word string) ([]Token, error) {
	if toks, err := ParseLabel(word); err == nil {
		return toks, nil
	}
	if t, ok := ParseKey(word); ok {
		return []Token{t}, nil
	}
	if t, ok := wordTokens[strings.ToLower(word)]; ok {
		return []Token{t}, nil
	}
	if word == "" {
		return nil, fmt.Errorf("%w: empty input", ErrUnknownToken)
	}
	toks := make([]Token, 0, len(word))
	for i := 0; i < len(word); i++ {
		switch c := word[i]; {
		case c >= '0' && c <= '9':
			toks = append(toks, DigitToken(c))
		case c == '.':
			toks = append(toks, DecimalToken)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownToken, word)
		}
	}
	return toks, nil
}
