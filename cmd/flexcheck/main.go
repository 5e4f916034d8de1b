// Command flexcheck validates FLEX run configurations and reports the
// resolved run plan without executing any stage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootFlags struct {
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:           "flexcheck",
	Short:         "Inspect FLEX solver run configurations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(planCmd)
}

// newLogger builds the CLI logger; --verbose lowers the level to debug.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if rootFlags.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "flexcheck:", err)
		os.Exit(1)
	}
}
