// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package password

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret wraps a generated password so that formatting, logging and JSON
// encoding print a placeholder. Use Reveal to get the text.
type Secret string

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so %v, %s, %q and %#v are redacted too.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// GoString keeps %#v from printing the quoted value.
func (s Secret) GoString() string { return redacted }

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the password.
func (s Secret) Reveal() string { return string(s) }

// Len returns the password length in bytes, which is safe to log.
func (s Secret) Len() int { return len(s) }
