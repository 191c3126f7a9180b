package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/mj1618/dashpanel/internal/output"
	"github.com/mj1618/dashpanel/internal/panel"
	"github.com/mj1618/dashpanel/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dashpanel",
	Short: "Render declarative dashboard panels",
	Long: `A CLI that turns a declarative layout document (JSON, YAML or TOML) into a
dashboard window: controls and procedurally drawn shapes at absolute
positions, styled by one generated stylesheet.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if err := configureLogging(level); err != nil {
			return err
		}

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags (e.g. render --image-format).
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}

// parseLevel maps a --log-level value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unsupported log level: %s (use debug, info, warn or error)", s)
	}
	return level, nil
}

// configureLogging routes panel and gg diagnostics to stderr.
func configureLogging(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	panel.SetLogger(logger)
	gg.SetLogger(logger)
	return nil
}
