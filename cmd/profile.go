package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the local profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update wage, wage type, or currency",
	RunE:  runProfileSet,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the local profile",
	Long:  "Deletes the local profile row. Decisions, goals, and wishlist rows stay in the database file.",
	RunE:  runLogout,
}

var (
	flagProfileWage     float64
	flagProfileWageType string
	flagProfileCurrency string
)

func init() {
	profileSetCmd.Flags().Float64Var(&flagProfileWage, "wage", -1, "default wage amount")
	profileSetCmd.Flags().StringVar(&flagProfileWageType, "wage-type", "", "hourly or yearly")
	profileSetCmd.Flags().StringVar(&flagProfileCurrency, "currency", "", "ISO currency code, e.g. USD")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	user, err := requireUser(s)
	if err != nil {
		return err
	}

	symbol := model.CurrencySymbol(user.Currency)
	profile := lifecost.Normalize(user.DefaultWage, user.WageType)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROFILE"))
	fmt.Println()
	fmt.Println(cli.RenderStat("Name", user.Name))
	fmt.Println(cli.RenderStat("Email", user.Email))
	fmt.Println(cli.RenderStat("Wage", fmt.Sprintf("%s/%s", cli.FormatMoney(symbol, user.DefaultWage), wageSuffix(user.WageType))))
	fmt.Println(cli.RenderStat("Effective hourly", cli.FormatMoney(symbol, profile.EffectiveHourly)))
	fmt.Println(cli.RenderStat("Effective monthly", cli.FormatMoney(symbol, profile.EffectiveMonthly)))
	fmt.Println(cli.RenderStat("Currency", fmt.Sprintf("%s (%s)", user.Currency, symbol)))
	fmt.Println()

	return nil
}

func runProfileSet(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	user, err := requireUser(s)
	if err != nil {
		return err
	}

	changed := false
	if flagProfileWage >= 0 {
		user.DefaultWage = flagProfileWage
		changed = true
	}
	if flagProfileWageType != "" {
		wt, ok := model.ParseWageType(flagProfileWageType)
		if !ok {
			return fmt.Errorf("wage type must be %q or %q", model.WageHourly, model.WageYearly)
		}
		user.WageType = wt
		changed = true
	}
	if flagProfileCurrency != "" {
		if !model.ValidCurrency(flagProfileCurrency) {
			return fmt.Errorf("unsupported currency %q", flagProfileCurrency)
		}
		user.Currency = flagProfileCurrency
		changed = true
	}
	if !changed {
		return errors.New("nothing to update — pass --wage, --wage-type, or --currency")
	}

	if err := s.SaveUser(*user); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	fmt.Println("Profile updated.")
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.DeleteAllUsers(); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	fmt.Println("Logged out. Your history is kept on disk.")
	return nil
}
