package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"ahorro/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to ahorro!")
	fmt.Println()

	// 1. Currency code
	fmt.Println("  1. Currency code")
	fmt.Printf("     Shown next to every amount. Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `ahorro setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
