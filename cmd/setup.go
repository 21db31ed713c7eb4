package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/config"
	"github.com/trucost-app/trucost/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Long:  "Create or edit your local profile: name, wage, and currency. Seeds default categories on first run.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	// Write the config file with defaults on first run so users have
	// something to edit.
	if !config.Exists() {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "  Could not write config: %v\n", err)
		}
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	existing, err := s.CurrentUser()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	name, email := "", ""
	wageStr := "25"
	wageType := string(model.WageHourly)
	currency := "USD"
	if existing != nil {
		name = existing.Name
		email = existing.Email
		wageStr = strconv.FormatFloat(existing.DefaultWage, 'f', -1, 64)
		wageType = string(existing.WageType)
		currency = existing.Currency
	}

	currencyOpts := make([]huh.Option[string], 0, len(model.Currencies))
	for _, c := range model.Currencies {
		currencyOpts = append(currencyOpts, huh.NewOption(fmt.Sprintf("%s (%s)", c.Code, c.Symbol), c.Code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&name).
				Validate(nonEmpty("name")),
			huh.NewInput().
				Title("Email").
				Value(&email),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default wage").
				Description("Hourly rate or yearly salary, just the number.").
				Value(&wageStr).
				Validate(nonNegativeNumber),
			huh.NewSelect[string]().
				Title("Wage type").
				Options(
					huh.NewOption("Hourly", string(model.WageHourly)),
					huh.NewOption("Yearly", string(model.WageYearly)),
				).
				Value(&wageType),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOpts...).
				Value(&currency),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	wage, _ := strconv.ParseFloat(wageStr, 64)
	wt, _ := model.ParseWageType(wageType)

	user := model.User{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        name,
		DefaultWage: wage,
		WageType:    wt,
		Currency:    currency,
		CreatedAt:   time.Now(),
	}
	if existing != nil {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	}

	if err := s.SaveUser(user); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	// Seed default categories once.
	if existing == nil {
		for _, catName := range model.DefaultCategories {
			cat := model.Category{
				ID:        uuid.NewString(),
				UserID:    user.ID,
				Name:      catName,
				IsDefault: true,
				CreatedAt: time.Now(),
			}
			if err := s.SaveCategory(cat); err != nil {
				return fmt.Errorf("seeding categories: %w", err)
			}
		}
	}

	fmt.Println()
	fmt.Printf("  Welcome, %s! Profile saved.\n", user.Name)
	fmt.Println("  Try `trucost calc \"New Headphones\" --cost 199` next.")
	fmt.Println()

	return nil
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func nonNegativeNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
