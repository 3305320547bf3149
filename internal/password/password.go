// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package password generates random passwords from selectable character
// sets and scores their strength.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Character sets offered by the generator.
const (
	UppercaseSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseSet = "abcdefghijklmnopqrstuvwxyz"
	DigitSet     = "0123456789"
	SymbolSet    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Length limits and default.
const (
	MinLength     = 4
	MaxLength     = 50
	DefaultLength = 12
)

var (
	ErrNoCharacterSet = errors.New("select at least one character type")
	ErrLength         = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
)

// Options selects the length and character sets of a generated password.
type Options struct {
	Length    int  `mapstructure:"length" yaml:"length"`
	Uppercase bool `mapstructure:"uppercase" yaml:"uppercase"`
	Lowercase bool `mapstructure:"lowercase" yaml:"lowercase"`
	Digits    bool `mapstructure:"digits" yaml:"digits"`
	Symbols   bool `mapstructure:"symbols" yaml:"symbols"`
}

// DefaultOptions returns a 12 character password with every set enabled.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

// Sets returns the enabled character sets in a fixed order.
func (o Options) Sets() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, UppercaseSet)
	}
	if o.Lowercase {
		sets = append(sets, LowercaseSet)
	}
	if o.Digits {
		sets = append(sets, DigitSet)
	}
	if o.Symbols {
		sets = append(sets, SymbolSet)
	}
	return sets
}

// Validate checks the length bounds and that at least one set is enabled.
func (o Options) Validate() error {
	if len(o.Sets()) == 0 {
		return ErrNoCharacterSet
	}
	if o.Length < MinLength || o.Length > MaxLength {
		return fmt.Errorf("%w (got %d)", ErrLength, o.Length)
	}
	return nil
}

// ClampLength returns n limited to [MinLength, MaxLength].
func ClampLength(n int) int {
	return max(MinLength, min(MaxLength, n))
}

// Generator produces passwords from a random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator reading from r. A nil r uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate returns a password using crypto/rand.
func Generate(o Options) (string, error) {
	return NewGenerator(nil).Generate(o)
}

// Generate builds a password with at least one character from every enabled
// set. The remaining positions are drawn from the union of the sets and the
// result is shuffled so the guaranteed characters land anywhere.
func (g *Generator) Generate(o Options) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	sets := o.Sets()
	pool := strings.Join(sets, "")

	out := make([]byte, 0, o.Length)
	for _, set := range sets {
		c, err := g.pick(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < o.Length {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	if err := g.shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}
