// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tape

import (
	"context"
	"time"

	"github.com/toeirei/pocketkit/internal/calc"
	"github.com/toeirei/pocketkit/internal/logging"
)

// Writer is the part of Store a Recorder needs.
type Writer interface {
	Record(ctx context.Context, c calc.Calculation) (Entry, error)
}

// Recorder writes every calculation an engine reports to the tape. Storage
// errors are logged and never reach the calculator.
type Recorder struct {
	w       Writer
	timeout time.Duration
}

// NewRecorder returns a calc.Observer backed by w.
func NewRecorder(w Writer) *Recorder {
	return &Recorder{w: w, timeout: 5 * time.Second}
}

// Evaluated implements calc.Observer.
func (r *Recorder) Evaluated(c calc.Calculation) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if _, err := r.w.Record(ctx, c); err != nil {
		logging.Warnf("tape: could not record %q: %v", c.String(), err)
	}
}
