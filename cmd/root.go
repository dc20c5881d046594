// Package cmd implements the ahorro CLI commands.
package cmd

import (
	"os"
	"path/filepath"

	"ahorro/internal/config"
	"ahorro/internal/ledger"
	"ahorro/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "ahorro",
	Short: "Personal savings tracker",
	Long:  "Track income and expense movements, your balance, and progress toward a monthly savings goal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the ledger data directory")
}

// openLedger is the shared setup path used by all commands: resolve config,
// open the store, load the state.
func openLedger() (*ledger.Ledger, config.Config, func(), error) {
	cfg, _ := config.Load()

	dbPath := config.DBPath(cfg)
	if flagDataDir != "" {
		dbPath = filepath.Join(flagDataDir, "ledger.db")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, nil, err
	}

	l, err := ledger.Open(st)
	if err != nil {
		_ = st.Close()
		return nil, cfg, nil, err
	}

	return l, cfg, func() { _ = st.Close() }, nil
}
