package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/pkg/logging"
)

var (
	flagLedger   string
	flagAsOf     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "financectl",
	Short:         "Personal finance projections",
	Long:          "Compute budget, savings and debt projections from a ledger JSON export.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagLogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLedger, "ledger", "l", "ledger.json", "Ledger JSON file")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Evaluate as of this date (YYYY-MM-DD), default today")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level")
}

// loadLedger reads the ledger file named by --ledger.
func loadLedger() (*models.FinanceLedger, error) {
	data, err := os.ReadFile(flagLedger)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	ledger := models.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", flagLedger, err)
	}
	ledger.Normalize()
	return ledger, nil
}

// asOf resolves --as-of, defaulting to now.
func asOf() (time.Time, error) {
	if flagAsOf == "" {
		return time.Now(), nil
	}
	d, err := models.ParseDate(flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of: %w", err)
	}
	return d.Time, nil
}
