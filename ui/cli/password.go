// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/pocketkit/internal/i18n"
	"github.com/toeirei/pocketkit/internal/logging"
	"github.com/toeirei/pocketkit/internal/password"
)

// clipboardWriteAll allows tests to replace the system clipboard.
var clipboardWriteAll = clipboard.WriteAll

func newPasswordCmd() *cobra.Command {
	var (
		length                             int
		noUpper, noLower, noDigits, noSyms bool
		count                              int
		copyOut, showStrength              bool
	)
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Long: `Generates passwords from uppercase letters, lowercase letters, digits and
symbols. Every enabled character type appears at least once.

Defaults come from the password section of the config file.

Examples:
  pocketkit password
  pocketkit password --length 20 --no-symbols --count 5
  pocketkit password --strength --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := appConfig.Password
			if cmd.Flags().Changed("length") {
				opts.Length = length
			}
			opts.Uppercase = opts.Uppercase && !noUpper
			opts.Lowercase = opts.Lowercase && !noLower
			opts.Digits = opts.Digits && !noDigits
			opts.Symbols = opts.Symbols && !noSyms
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			gen := password.NewGenerator(nil)
			out := make([]string, 0, count)
			for i := 0; i < count; i++ {
				pw, err := gen.Generate(opts)
				if err != nil {
					if errors.Is(err, password.ErrNoCharacterSet) {
						return errors.New(i18n.T("password.error_no_sets"))
					}
					return err
				}
				out = append(out, pw)
				logging.Debugf("password: generated %v (%d chars)", password.Secret(pw), len(pw))
				if showStrength {
					score := password.Strength(pw)
					rating := password.Rate(score)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pw, i18n.T("password.strength_value", i18n.T(rating.MessageID), score))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), pw)
				}
			}

			if copyOut {
				if err := clipboardWriteAll(strings.Join(out, "\n")); err != nil {
					return errors.New(i18n.T("password.copy_failed", err))
				}
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", password.DefaultLength, fmt.Sprintf("Password length (%d-%d)", password.MinLength, password.MaxLength))
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "Leave out uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "Leave out lowercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "Leave out digits")
	cmd.Flags().BoolVar(&noSyms, "no-symbols", false, "Leave out symbols")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "Copy the generated passwords to the clipboard")
	cmd.Flags().BoolVarP(&showStrength, "strength", "s", false, "Show the strength rating next to each password")
	return cmd
}
