// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hannguyen0712/credit-scorecerer/internal/cards"
	"github.com/hannguyen0712/credit-scorecerer/internal/config"
	"github.com/hannguyen0712/credit-scorecerer/internal/logging"
)

var (
	// Log is the shared logrus instance for commands
	Log = logrus.New()

	// Logger is the structured logging adapter handed to internal packages
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(Log)

	// Cfg is the loaded application configuration, populated before any
	// subcommand runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "credit-scorecerer",
		Short: "A CLI credit card advisor: purchase recommendations, utilization analysis, and credit insights.",
		Long: `credit-scorecerer helps you decide which credit card to use for a purchase.
It combines a Gemini-backed advisor with a deterministic utilization heuristic,
so a recommendation is always available even without an API key.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to credit-scorecerer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			Logger = logging.NewLogrusAdapterFromLogger(Log)
			return nil
		},
	}
)

// Store builds the card store from the loaded configuration.
func Store() *cards.Store {
	return cards.NewStore(Cfg.Data.CardsFile, Cfg.Data.HistoryFile, Logger)
}
