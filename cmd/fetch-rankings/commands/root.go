package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golfr-rankings/internal/config"
	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/lib/serviceutil"

	"github.com/spf13/cobra"
)

var configPath *string
var dumpHttp *string

func init() {
	configPath = rootCmd.PersistentFlags().String("config", config.DefaultName, "The configuration file, a bare name is searched for in parent directories.")
	dumpHttp = rootCmd.PersistentFlags().String("dump-http", "", "A directory to write HTTP request and response dumps to.")
}

var rootCmd = &cobra.Command{
	Use:   "fetch-rankings [--config <path/to/rankings.json5>] [--dump-http <dir>]",
	Short: "fetch-rankings refreshes rankings.json from the Official World Golf Ranking.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		_, err := runRefresh(cmd.Context(), cfg, *dumpHttp)
		if err != nil {
			serviceutil.Fatal("failed to refresh rankings", err)
		}
	},
}

// loadConfig reads the configuration and sets up logging, it exits the
// process if the configuration is invalid.
func loadConfig() config.Config {
	// logging before the config is read uses the defaults
	telemetry.InitSlog(os.Stderr, false)

	cfg, err := config.Load(*configPath)
	if err != nil {
		serviceutil.Fatal("failed to load config", err)
	}
	telemetry.InitSlog(os.Stderr, cfg.Debug)
	slog.Debug("loaded config", "path", *configPath, "output", cfg.Output)
	return cfg
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
