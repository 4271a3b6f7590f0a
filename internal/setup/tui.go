// Package setup implements the interactive configuration wizard.
package setup

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/papertrader/config"
	"gopkg.in/yaml.v3"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// RunTUI launches the terminal configuration wizard and writes the result
// to config.gen.yaml.
func RunTUI() error {
	var (
		owner      string
		balanceStr string
		symbols    []string
		confirm    bool
	)

	defaults := config.Default()
	owner = defaults.Owner
	balanceStr = defaults.Balance.StringFixed(2)

	options := make([]huh.Option[string], 0, len(defaults.Instruments))
	for _, inst := range defaults.Instruments {
		label := fmt.Sprintf("%s — %s ($%s)", inst.Symbol, inst.Name, inst.Price.StringFixed(2))
		options = append(options, huh.NewOption(label, inst.Symbol).Selected(true))
	}

	// step 1: account
	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("PAPERTRADER CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Set up your trading session.\n"))

	fmt.Println(stepStyle.Render("STEP 1: ACCOUNT"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account Owner").
				Value(&owner).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("owner cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Starting Balance").
				Description("Cash in dollars (e.g. 10000.00)").
				Value(&balanceStr).
				Validate(validateBalance),
		),
	).Run()
	if err != nil {
		return err
	}

	// step 2: catalog
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("PAPERTRADER CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: MARKET"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Tradable Instruments").
				Options(options...).
				Value(&symbols).
				Validate(func(picked []string) error {
					if len(picked) == 0 {
						return fmt.Errorf("pick at least one instrument")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return err
	}

	// confirmation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("PAPERTRADER CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf(
		"Owner: %s\nBalance: $%s\nInstruments: %d\n",
		owner, balanceStr, len(symbols),
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save and start").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	picked := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		picked[s] = true
	}

	fc := config.FileConfig{
		Owner:   owner,
		Balance: balanceStr,
	}
	for _, inst := range defaults.Instruments {
		if !picked[inst.Symbol] {
			continue
		}
		fc.Instruments = append(fc.Instruments, config.InstrumentConfig{
			Symbol: inst.Symbol,
			Name:   inst.Name,
			Price:  inst.Price.StringFixed(2),
		})
	}

	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}

	if err := os.WriteFile(config.GeneratedFile, data, 0644); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(
		fmt.Sprintf("\n✓ Configuration saved to %s\nStarting session...", config.GeneratedFile)))
	time.Sleep(1500 * time.Millisecond) // small pause to read success message
	return nil
}

func validateBalance(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
