package cli

import (
	"fmt"
	"log/slog"
	"os"

	"boardcamp/config"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "boardcamp",
	Short: "BoardCamp - board game rental API",
	Long: `BoardCamp manages customers, a games catalog and game rentals.

Configuration is read from the environment (APP_PORT, STORE_DRIVER, DATABASE_URL,
SQLITE_PATH, RENTAL_STOCK_RELEASE, LOG_LEVEL, SHUTDOWN_TIMEOUT).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func newLogger(cfg config.App) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}
