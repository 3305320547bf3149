// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"strings"
)

// Calculation describes one successful evaluation.
type Calculation struct {
	Left     string
	Operator Operator
	Right    string
	Result   string
}

// Expression renders the calculation without its result, e.g. "12 + 8".
func (c Calculation) Expression() string {
	return c.Left + " " + string(c.Operator) + " " + c.Right
}

func (c Calculation) String() string {
	return c.Expression() + " = " + c.Result
}

// Observer is notified after every successful evaluation.
type Observer interface {
	Evaluated(c Calculation)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(c Calculation)

// Evaluated calls f(c).
func (f ObserverFunc) Evaluated(c Calculation) { f(c) }

// State is a snapshot of the engine's fields.
type State struct {
	Buffer      string
	Accumulator string
	Operator    Operator
}

// Empty reports whether the snapshot is the all-clear state.
func (s State) Empty() bool {
	return s.Buffer == "" && s.Accumulator == "" && s.Operator == NoOperator
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver registers o to receive every successful calculation.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// Engine is the calculator state machine. The zero value is ready to use and
// displays "0".
type Engine struct {
	buffer      string   // operand being typed
	accumulator string   // left-hand operand of the pending operation
	operator    Operator // pending operation
	observer    Observer
}

// New returns an engine in the all-clear state.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a copy of the current fields.
func (e *Engine) State() State {
	return State{Buffer: e.buffer, Accumulator: e.accumulator, Operator: e.operator}
}

// Display returns the string the calculator display should show.
func (e *Engine) Display() string {
	if e.buffer != "" {
		return e.buffer
	}
	if e.accumulator != "" && e.operator != NoOperator {
		return e.accumulator + " " + string(e.operator)
	}
	return "0"
}

// HandleToken applies a single token and returns the new display. On error
// the engine is already back in the all-clear state and the returned display
// is "0", except for ErrUnknownToken which leaves the state untouched.
func (e *Engine) HandleToken(t Token) (string, error) {
	switch t.Kind {
	case KindDigit:
		if t.Digit < '0' || t.Digit > '9' {
			return e.Display(), fmt.Errorf("%w: digit %q", ErrUnknownToken, t.Digit)
		}
		return e.Digit(t.Digit), nil
	case KindDecimal:
		return e.DecimalPoint(), nil
	case KindOperator:
		return e.PressOperator(t.Operator)
	case KindEquals:
		return e.Equals()
	case KindClear:
		return e.Clear(), nil
	case KindSign:
		return e.ToggleSign(), nil
	case KindPercent:
		return e.Percent()
	case KindBackspace:
		return e.Backspace(), nil
	}
	return e.Display(), fmt.Errorf("%w: %v", ErrUnknownToken, t.Kind)
}

// Run feeds tokens to the engine in order and stops at the first error.
func (e *Engine) Run(tokens []Token) (string, error) {
	display := e.Display()
	for _, t := range tokens {
		var err error
		display, err = e.HandleToken(t)
		if err != nil {
			return display, err
		}
	}
	return display, nil
}

// Digit appends d to the operand. A lone "0" is replaced instead of
// growing a leading zero.
func (e *Engine) Digit(d byte) string {
	if e.buffer == "0" {
		e.buffer = string(d)
	} else {
		e.buffer += string(d)
	}
	return e.Display()
}

// DecimalPoint starts the fractional part of the operand. It does nothing if
// the operand already has one.
func (e *Engine) DecimalPoint() string {
	if strings.Contains(e.buffer, ".") {
		return e.Display()
	}
	if e.buffer == "" {
		e.buffer = "0."
	} else {
		e.buffer += "."
	}
	return e.Display()
}

// PressOperator selects op as the pending operation. If an operation is
// already pending it is evaluated first, so chains fold left to right.
func (e *Engine) PressOperator(op Operator) (string, error) {
	if !op.Valid() {
		return e.Display(), fmt.Errorf("%w: operator %q", ErrUnknownToken, string(op))
	}
	if e.buffer == "" {
		return e.Display(), nil
	}
	if e.accumulator != "" && e.operator != NoOperator {
		if _, err := e.Equals(); err != nil {
			return e.Display(), err
		}
	}
	e.accumulator = e.buffer
	e.buffer = ""
	e.operator = op
	return e.Display(), nil
}

// Equals evaluates the pending operation. It is a no-op unless both operands
// and an operator are present.
func (e *Engine) Equals() (string, error) {
	if e.accumulator == "" || e.buffer == "" || e.operator == NoOperator {
		return e.Display(), nil
	}

	left, err := parseOperand(e.accumulator)
	if err != nil {
		return e.fail(invalidOperandError("calc.error_invalid", e.accumulator, err))
	}
	right, err := parseOperand(e.buffer)
	if err != nil {
		return e.fail(invalidOperandError("calc.error_invalid", e.buffer, err))
	}

	var result float64
	switch e.operator {
	case Add:
		result = left + right
	case Subtract:
		result = left - right
	case Multiply:
		result = left * right
	case Divide:
		if right == 0 {
			return e.fail(divideByZeroError())
		}
		result = left / right
	default:
		return e.fail(invalidOperandError("calc.error_invalid", string(e.operator), nil))
	}

	text, err := formatNumber(result, true)
	if err != nil {
		return e.fail(invalidOperandError("calc.error_invalid", "", err))
	}

	c := Calculation{Left: e.accumulator, Operator: e.operator, Right: e.buffer, Result: text}
	e.buffer = text
	e.accumulator = ""
	e.operator = NoOperator
	if e.observer != nil {
		e.observer.Evaluated(c)
	}
	return e.Display(), nil
}

// Clear resets the engine to its initial state.
func (e *Engine) Clear() string {
	e.buffer = ""
	e.accumulator = ""
	e.operator = NoOperator
	return e.Display()
}

// ToggleSign flips the sign of the operand. Empty and "0" operands are left
// alone.
func (e *Engine) ToggleSign() string {
	if e.buffer == "" || e.buffer == "0" {
		return e.Display()
	}
	if strings.HasPrefix(e.buffer, "-") {
		e.buffer = e.buffer[1:]
	} else {
		e.buffer = "-" + e.buffer
	}
	return e.Display()
}

// Percent divides the operand by 100. It does not take the pending operation
// into account.
func (e *Engine) Percent() (string, error) {
	if e.buffer == "" {
		return e.Display(), nil
	}
	v, err := parseOperand(e.buffer)
	if err != nil {
		return e.fail(invalidOperandError("calc.error_invalid_percent", e.buffer, err))
	}
	text, err := formatNumber(v/100, false)
	if err != nil {
		return e.fail(invalidOperandError("calc.error_invalid_percent", e.buffer, err))
	}
	e.buffer = text
	return e.Display(), nil
}

// Backspace removes the last character of the operand, leaving "0" when
// nothing remains.
func (e *Engine) Backspace() string {
	if e.buffer == "" {
		return e.Display()
	}
	e.buffer = e.buffer[:len(e.buffer)-1]
	if e.buffer == "" {
		e.buffer = "0"
	}
	return e.Display()
}

// fail resets the engine and returns err with the all-clear display.
func (e *Engine) fail(err *Error) (string, error) {
	return e.Clear(), err
}
