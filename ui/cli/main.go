// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the persistent flags shared by every
// subcommand, configuration loading and the main entry point for execution.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/pocketkit/buildvars"
	"github.com/toeirei/pocketkit/internal/config"
	"github.com/toeirei/pocketkit/internal/i18n"
	"github.com/toeirei/pocketkit/internal/logging"
	"github.com/toeirei/pocketkit/internal/tape"
	"github.com/toeirei/pocketkit/internal/tui"
)

// modulePath is used to find our own version in the build info.
const modulePath = "github.com/toeirei/pocketkit"

// debugLogFile receives TUI logs when --verbose is set.
const debugLogFile = "pocketkit-debug.log"

var (
	version   = buildvars.VersionOrDefault("dev") // set by the linker via buildvars
	gitCommit = "dev"                             // short commit SHA, see buildvars.Commit
	buildDate = ""                                // RFC3339, see buildvars.Date
)

func init() {
	if buildvars.Commit != "" {
		gitCommit = buildvars.Commit
	}
	if buildvars.Date != "" {
		buildDate = buildvars.Date
	}
}

var verbose bool

// appConfig is the configuration resolved by setupDefaultServices.
var appConfig config.Config

// openTapeFunc allows tests to override how the tape database is opened.
var openTapeFunc = tape.Open

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it specifically.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// Only write a default file when no explicit --config was given.
		if optionalConfigPath == nil {
			if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
				// Log a warning but don't fail, as the app can run on defaults.
				logging.Warnf("could not write default config file: %v", writeErr)
			} else {
				logging.Debugf("wrote default config to user config path")
			}
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling back to defaults.
	// This handles cases where the user's config file has empty values for these fields.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	logging.SetLevel(appConfig.Log.Level)
	if verbose {
		logging.SetDebug(true)
	}

	i18n.Init(appConfig.Language)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	// If the flag is set but the value is empty, do nothing.
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// openTape opens the configured tape database.
func openTape(ctx context.Context) (*tape.Store, error) {
	store, err := openTapeFunc(ctx, appConfig.Database.Type, appConfig.Database.Dsn)
	if err != nil {
		return nil, errors.New(i18n.T("cli.error_open_tape", err))
	}
	return store, nil
}

// saveLanguage persists a language picked in the TUI.
func saveLanguage(lang string) error {
	appConfig.Language = lang
	return config.WriteConfigFile(&appConfig, false)
}

// runTUI starts the interactive interface. A tape that cannot be opened is
// logged and the calculator runs without one.
func runTUI(cmd *cobra.Command, args []string) error {
	opts := tui.Options{
		Password:     appConfig.Password,
		TapeLimit:    appConfig.Tape.Limit,
		SaveLanguage: saveLanguage,
	}
	if verbose {
		opts.LogFile = debugLogFile
	}
	if appConfig.Tape.Enabled {
		store, err := openTape(cmd.Context())
		if err != nil {
			logging.Warnf("%v", err)
		} else {
			defer func() { _ = store.Close() }()
			opts.Tape = store
		}
	}
	return tui.Run(opts)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pocketkit",
		Short: "Pocketkit is a terminal calculator and password generator.",
		Long: `Pocketkit bundles a four-function calculator and a password generator.
Finished calculations can be kept on a tape stored in SQLite, PostgreSQL
or MySQL.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runTUI,
	}

	cmd.Version = compositeVersion(resolveBuildVersion(nil))
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", "", "Tape database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "", "Tape database connection string (DSN)")
	// Registering our own flag keeps cobra from adding one without the -V shorthand.
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	cmd.AddCommand(newCalcCmd(), newPasswordCmd(), newTapeCmd(), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Printing the version needs neither config nor i18n.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Fprintf(cmd.OutOrStdout(), "pocketkit %s\n", v)
			if c != "" && c != "dev" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", c)
			}
			if d != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", d)
			}
		},
	}
}

// compositeVersion joins the parts of resolveBuildVersion into one line.
func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" && c != v {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date from link-time variables and the embedded build info. A nil info
// reads the running binary's build info.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
