// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/pocketkit/internal/calc"
	"github.com/toeirei/pocketkit/internal/i18n"
	"github.com/toeirei/pocketkit/internal/tape"
	"golang.org/x/term"
)

// stdinIsTerminal allows tests to pretend stdin is piped.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newCalcCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "calc [tokens...]",
		Short: "Evaluate calculator key presses",
		Long: `Feeds tokens to the calculator, exactly as if the keys had been pressed,
and prints the final display.

Tokens are button labels (0-9, 00, ., +, -, ×, ÷, =, C, ±, %), keyboard keys
(* / x , n backspace enter) or words (plus minus times div equals clear sign
percent bs). Runs of digits such as 12.5 are split into single key presses.
Without arguments, whitespace separated tokens are read from stdin.

Examples:
  pocketkit calc 12 + 8 =
  pocketkit calc 1 / 0 =
  echo "2 times 3 plus 4 equals" | pocketkit calc --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if len(words) == 0 {
				if stdinIsTerminal() {
					return cmd.Help()
				}
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("could not read stdin: %w", err)
				}
				words = strings.Fields(string(data))
			}

			var opts []calc.Option
			if appConfig.Tape.Enabled {
				store, err := openTape(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				opts = append(opts, calc.WithObserver(tape.NewRecorder(store)))
			}

			display, err := evaluate(calc.New(opts...), words, trace, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the display after every token")
	return cmd
}

// evaluate feeds words to e and returns the final display. With trace set,
// every word is echoed together with the display it produced.
func evaluate(e *calc.Engine, words []string, trace bool, out io.Writer) (string, error) {
	display := e.Display()
	for _, w := range words {
		toks, err := calc.ParseInput(w)
		if err != nil {
			return display, err
		}
		for _, t := range toks {
			display, err = e.HandleToken(t)
			if err != nil {
				return display, localizeCalcError(err)
			}
		}
		if trace {
			fmt.Fprintf(out, "%-8s %s\n", w, display)
		}
	}
	return display, nil
}

// localizedError shows the translated message of an engine error and still
// unwraps to it.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

func localizeCalcError(err error) error {
	var ce *calc.Error
	if errors.As(err, &ce) {
		return &localizedError{msg: i18n.T(ce.MessageID), err: err}
	}
	return err
}
