// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/pocketkit/internal/i18n"
)

func newTapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tape",
		Short: "Inspect and manage the calculation tape",
		Long: `The tape keeps every finished calculation when tape.enabled is set in the
config. These commands work on the configured database regardless of that
setting.`,
	}
	cmd.AddCommand(newTapeListCmd(), newTapeClearCmd(), newTapeExportCmd(), newTapeImportCmd())
	return cmd
}

func newTapeListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent tape entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openTape(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, i18n.T("cli.tape_empty"))
				if !appConfig.Tape.Enabled {
					fmt.Fprintln(out, i18n.T("cli.tape_disabled"))
				}
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n", e.CreatedAt.Local().Format(time.DateTime), e.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show (0 for all)")
	return cmd
}

func newTapeClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every tape entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openTape(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.tape_cleared", n))
			return nil
		},
	}
}

// newTapeExportCmd represents the 'tape export' command.
// It dumps the tape into a single zstd-compressed JSON file.
func newTapeExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [output-file]",
		Short: "Write the tape to a compressed (zstd) JSON file",
		Long: `Writes every tape entry, oldest first, into a Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's not already present.
If no output file is specified, a default filename 'pocketkit-tape-YYYY-MM-DD.json.zst' is used.

Examples:
  pocketkit tape export
  pocketkit tape export my-tape.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputFile string
			if len(args) == 0 {
				outputFile = fmt.Sprintf("pocketkit-tape-%s.json.zst", time.Now().Format("2006-01-02"))
			} else {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}

			store, err := openTape(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			n, err := store.Export(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.tape_exported", n, outputFile))
			return nil
		},
	}
}

// newTapeImportCmd represents the 'tape import' command.
// Imported entries are appended; existing entries are kept.
func newTapeImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup-file.zst>",
		Short: "Append entries from a file written by 'tape export'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]
			f, err := os.Open(inputFile)
			if err != nil {
				return fmt.Errorf("could not open file: %w", err)
			}
			defer func() { _ = f.Close() }()

			store, err := openTape(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := store.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.tape_imported", n, inputFile))
			return nil
		},
	}
}
