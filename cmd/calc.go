package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
)

var (
	flagCalcCost     float64
	flagCalcWage     float64
	flagCalcCategory string
	flagCalcSave     bool
)

var calcCmd = &cobra.Command{
	Use:   "calc [name]",
	Short: "Compute the life cost of a purchase",
	Long:  "Shows hours of work, monthly income impact, recovery days, and goal delay for a purchase. --save commits it to the ledger.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().Float64VarP(&flagCalcCost, "cost", "c", 0, "Purchase cost (required)")
	calcCmd.Flags().Float64VarP(&flagCalcWage, "wage", "w", 0, "Override the stored wage for this calculation")
	calcCmd.Flags().StringVar(&flagCalcCategory, "category", "", "Category name (default: your first category)")
	calcCmd.Flags().BoolVar(&flagCalcSave, "save", false, "Commit the decision to the ledger")
	_ = calcCmd.MarkFlagRequired("cost")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(_ *cobra.Command, args []string) error {
	if flagCalcCost < 0 {
		return fmt.Errorf("cost must not be negative")
	}

	name := ""
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	}

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

	// A one-off wage override keeps the stored wage type.
	if flagCalcWage > 0 {
		user.DefaultWage = flagCalcWage
	}

	goal, err := s.GoalForUser(user.ID)
	if err != nil {
		return err
	}

	symbol := model.CurrencySymbol(user.Currency)
	profile := lifecost.Normalize(user.DefaultWage, user.WageType)
	impact := lifecost.ComputeImpact(flagCalcCost, profile)
	delay := lifecost.DelayDays(flagCalcCost, goal)

	title := "LIFE TIME VALUE"
	if name != "" {
		title = strings.ToUpper(name)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Println(cli.RenderStat("Cost", cli.FormatMoney(symbol, flagCalcCost)))
	fmt.Println(cli.RenderStat("Hours of work", cli.Accent(cli.FormatHours(impact.HoursOfWork))))
	fmt.Println(cli.RenderStat("Recovery", cli.FormatWorkDays(impact.RecoveryWorkDays)))
	fmt.Println()
	fmt.Printf("  %s %s %s\n",
		cli.Muted("Monthly impact"),
		cli.RenderMeter(impact.IncomeImpactPercent, 24),
		cli.FormatPercent(impact.IncomeImpactPercent),
	)

	if goal != nil {
		fmt.Println()
		if delay > 0 {
			fmt.Println(cli.RenderStat("Goal impact", cli.Warn(fmt.Sprintf("%s delaying %q", cli.FormatDelay(delay), goal.Name))))
		} else {
			fmt.Println(cli.RenderStat("Goal impact", "none"))
		}
	} else {
		fmt.Println()
		fmt.Println(cli.Muted("  Want to see goal delays? Set one with `trucost goal set`."))
	}
	fmt.Println()

	if !flagCalcSave {
		return nil
	}

	categoryID, err := resolveCategory(s, user.ID, flagCalcCategory)
	if err != nil {
		return err
	}

	d := lifecost.BuildDecision(*user, name, flagCalcCost, categoryID, goal, time.Now())
	if err := s.SaveDecision(d); err != nil {
		return fmt.Errorf("saving decision: %w", err)
	}

	msg := fmt.Sprintf("Saved! This purchase costs %s of your life", cli.FormatHours(d.ComputedHours))
	if d.ComputedGoalDelayDays > 0 {
		msg += fmt.Sprintf(" and delays your goal by %d days", d.ComputedGoalDelayDays)
	}
	fmt.Printf("  %s.\n\n", cli.Accent(msg))

	return nil
}
