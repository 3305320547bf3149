// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"strings"
	"testing"
)

// tokens builds a token sequence from labels and key names.
func tokens(t *testing.T, words ...string) []Token {
	t.Helper()
	var out []Token
	for _, w := range words {
		toks, err := ParseInput(w)
		if err != nil {
			t.Fatalf("ParseInput(%q): %v", w, err)
		}
		out = append(out, toks...)
	}
	return out
}

func TestEngine_InitialDisplay(t *testing.T) {
	e := New()
	if got := e.Display(); got != "0" {
		t.Fatalf("expected initial display 0, got %q", got)
	}
	if !e.State().Empty() {
		t.Fatalf("expected empty state, got %+v", e.State())
	}
	var zero Engine
	if got := zero.Display(); got != "0" {
		t.Fatalf("zero value engine should display 0, got %q", got)
	}
}

func TestEngine_Sequences(t *testing.T) {
	cases := []struct {
		name  string
		input []string
		want  string
	}{
		{"addition", []string{"1", "2", "+", "8", "="}, "20"},
		{"chaining is left to right", []string{"2", "+", "3", "×", "4", "="}, "20"},
		{"subtraction to negative", []string{"3", "-", "1", "0", "="}, "-7"},
		{"division fraction", []string{"1", "÷", "4", "="}, "0.25"},
		{"rounded to eight places", []string{"2", "÷", "3", "="}, "0.66666667"},
		{"float noise removed", []string{"0", ".", "1", "+", "0", ".", "2", "="}, "0.3"},
		{"integral float result", []string{"2", ".", "5", "×", "4", "="}, "10"},
		{"leading zero suppressed", []string{"0", "0", "7"}, "7"},
		{"double zero button", []string{"00", "5"}, "5"},
		{"decimal from empty", []string{"."}, "0."},
		{"decimal idempotent", []string{"1", ".", ".", "5"}, "1.5"},
		{"backspace", []string{"7", ".", "5", "backspace"}, "7."},
		{"backspace to zero", []string{"7", "backspace"}, "0"},
		{"backspace on empty", []string{"backspace"}, "0"},
		{"operator shows pending", []string{"9", "+"}, "9 +"},
		{"operator replaced while pending", []string{"9", "+", "-"}, "9 +"},
		{"operator ignored without operand", []string{"+"}, "0"},
		{"equals without operand", []string{"9", "+", "="}, "9 +"},
		{"equals alone", []string{"="}, "0"},
		{"percent of fifty", []string{"5", "0", "%"}, "0.5"},
		{"percent of hundred", []string{"1", "0", "0", "%"}, "1"},
		{"percent ignores pending op", []string{"2", "0", "0", "+", "5", "0", "%", "="}, "200.5"},
		{"toggle sign", []string{"5", "±"}, "-5"},
		{"toggle sign twice", []string{"5", "±", "±"}, "5"},
		{"toggle sign zero", []string{"0", "±"}, "0"},
		{"digits append to result", []string{"2", "+", "2", "=", "1"}, "41"},
		{"result feeds next operation", []string{"2", "+", "2", "=", "×", "3", "="}, "12"},
		{"negative zero result", []string{"0", "±", ".", "×", "5", "="}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New()
			got, err := e.Run(tokens(t, tc.input...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("input %v: expected %q, got %q", tc.input, tc.want, got)
			}
			if got != e.Display() {
				t.Fatalf("returned display %q differs from Display() %q", got, e.Display())
			}
		})
	}
}

func TestEngine_DigitConcatenation(t *testing.T) {
	e := New()
	typed := "0123456789"
	for i := 0; i < len(typed); i++ {
		e.Digit(typed[i])
	}
	if got := e.Display(); got != "123456789" {
		t.Fatalf("expected 123456789, got %q", got)
	}
}

func TestEngine_DecimalPointNeverDoubles(t *testing.T) {
	e := New()
	e.Digit('3')
	e.DecimalPoint()
	e.DecimalPoint()
	e.Digit('1')
	e.DecimalPoint()
	if n := strings.Count(e.Display(), "."); n != 1 {
		t.Fatalf("expected exactly one decimal point, got %q", e.Display())
	}
}

func TestEngine_EqualsIdempotent(t *testing.T) {
	e := New()
	if _, err := e.Run(tokens(t, "6", "×", "7")); err != nil {
		t.Fatal(err)
	}
	first, err := e.Equals()
	if err != nil || first != "42" {
		t.Fatalf("expected 42, got %q (%v)", first, err)
	}
	before := e.State()
	second, err := e.Equals()
	if err != nil {
		t.Fatal(err)
	}
	if second != first || e.State() != before {
		t.Fatalf("second equals changed state: %q %+v", second, e.State())
	}
}

func TestEngine_DivideByZero(t *testing.T) {
	e := New()
	got, err := e.Run(tokens(t, "5", "÷", "0", "="))
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
	var ce *Error
	if !errors.As(err, &ce) || ce.Kind != DivideByZero {
		t.Fatalf("expected *Error with DivideByZero kind, got %#v", err)
	}
	if ce.MessageID != "calc.error_divide_by_zero" {
		t.Fatalf("unexpected message id %q", ce.MessageID)
	}
	if got != "0" || !e.State().Empty() {
		t.Fatalf("expected reset after divide by zero, display %q state %+v", got, e.State())
	}
	// engine stays usable
	if got, err := e.Run(tokens(t, "1", "+", "1", "=")); err != nil || got != "2" {
		t.Fatalf("engine unusable after error: %q %v", got, err)
	}
}

func TestEngine_DivideByZeroWhileChaining(t *testing.T) {
	e := New()
	got, err := e.Run(tokens(t, "8", "÷", "0", "+"))
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
	if got != "0" || !e.State().Empty() {
		t.Fatalf("chained divide by zero left state %+v display %q", e.State(), got)
	}
}

func TestEngine_InvalidOperand(t *testing.T) {
	e := New()
	// "-5" backspaced leaves a lone "-" which cannot be parsed.
	if _, err := e.Run(tokens(t, "3", "+", "5", "±", "backspace")); err != nil {
		t.Fatal(err)
	}
	if e.Display() != "-" {
		t.Fatalf("expected '-', got %q", e.Display())
	}
	got, err := e.Equals()
	if !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
	if errors.Is(err, ErrDivideByZero) {
		t.Fatal("invalid operand must not match ErrDivideByZero")
	}
	if got != "0" || !e.State().Empty() {
		t.Fatalf("expected reset, got %q %+v", got, e.State())
	}
}

func TestEngine_PercentInvalidOperand(t *testing.T) {
	e := New()
	e.Digit('4')
	e.ToggleSign()
	e.Backspace()
	_, err := e.Percent()
	var ce *Error
	if !errors.As(err, &ce) || ce.Kind != InvalidOperand || ce.MessageID != "calc.error_invalid_percent" {
		t.Fatalf("expected invalid percent error, got %#v", err)
	}
	if !e.State().Empty() {
		t.Fatalf("expected reset, got %+v", e.State())
	}
}

func TestEngine_Overflow(t *testing.T) {
	e := New()
	big := strings.Repeat("9", 200)
	// 1e200 × 1e200 does not fit in a float64.
	_, err := e.Run(tokens(t, big, "×", big, "="))
	if !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected overflow to be reported as invalid operand, got %v", err)
	}
	if !e.State().Empty() {
		t.Fatalf("expected reset, got %+v", e.State())
	}
}

func TestEngine_Clear(t *testing.T) {
	e := New()
	if _, err := e.Run(tokens(t, "4", "+", "2")); err != nil {
		t.Fatal(err)
	}
	if got, _ := e.HandleToken(ClearToken); got != "0" {
		t.Fatalf("expected 0 after clear, got %q", got)
	}
	if !e.State().Empty() {
		t.Fatalf("expected all fields empty, got %+v", e.State())
	}
}

func TestEngine_UnknownTokenLeavesState(t *testing.T) {
	e := New()
	e.Digit('4')
	before := e.State()
	cases := []Token{
		{Kind: Kind(99)},
		{Kind: KindDigit, Digit: 'a'},
		OperatorToken("^"),
	}
	for _, tok := range cases {
		got, err := e.HandleToken(tok)
		if !errors.Is(err, ErrUnknownToken) {
			t.Fatalf("token %v: expected ErrUnknownToken, got %v", tok, err)
		}
		if got != "4" || e.State() != before {
			t.Fatalf("token %v changed state: %q %+v", tok, got, e.State())
		}
	}
}

func TestEngine_Observer(t *testing.T) {
	var seen []Calculation
	e := New(WithObserver(ObserverFunc(func(c Calculation) { seen = append(seen, c) })))
	if _, err := e.Run(tokens(t, "2", "+", "3", "×", "4", "=")); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 calculations, got %d: %v", len(seen), seen)
	}
	if seen[0].String() != "2 + 3 = 5" {
		t.Fatalf("unexpected first calculation %q", seen[0].String())
	}
	if seen[1].Expression() != "5 × 4" || seen[1].Result != "20" {
		t.Fatalf("unexpected second calculation %+v", seen[1])
	}

	seen = nil
	_, _ = e.Run(tokens(t, "clear", "1", "÷", "0", "="))
	if len(seen) != 0 {
		t.Fatalf("failed calculations must not be observed, got %v", seen)
	}
}
