// A command line tool to align text into columns
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fractalqb/regx/internal/logging"
)

const Version = "0.1.0"

var rootCmd = struct {
	cobra.Command
	logLevel    string
	presetsFile string
	log         *slog.Logger
}{
	Command: cobra.Command{
		Use:   "regx",
		Short: "Align text into columns by regular expression capture groups",
		Long: `Align text into columns by regular expression capture groups

Each capture group of the first match of the pattern in a line becomes a
column. Columns with the same index are padded to a common width that is
rounded up to a multiple of the tab width. Lines the pattern does not
match are passed through unchanged.

GROUP SETTINGS

   BEFORE:AFTER  trim leading/trailing whitespace of the group and pad with
                 the given number of spaces; leave a side empty to keep
                 the captured text as it is on that side, e.g. ":1" or "0:"
   N             same as ":N"`,
		Version:      Version,
		SilenceUsage: true,
	},
	log: slog.Default(),
}

func init() {
	rootCmd.PersistentPreRunE = setupLogging
	rootCmd.PersistentFlags().StringVar(&rootCmd.logLevel, "log-level", "WARN",
		"Set log level: ERROR, WARN, INFO, DEBUG or TRACE")
	rootCmd.PersistentFlags().StringVar(&rootCmd.presetsFile, "presets", defaultPresetsFile(),
		"Set the file with user presets")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	rootCmd.log = logging.NewLogger(cmd.ErrOrStderr(), rootCmd.logLevel)
	return nil
}

func defaultPresetsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "regx", "presets.yaml")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
