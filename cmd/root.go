// Package cmd implements the trucost CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/config"
	"github.com/trucost-app/trucost/internal/gemini"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/store"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "trucost",
	Short: "See purchases as hours of your life",
	Long:  "TruCost converts purchase costs into hours of work and shows how spending delays your savings goal.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Database file (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig reads the config, tolerating a missing file.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagQuiet {
		cfg.General.Quiet = true
	}
	return cfg
}

// openStore opens the database at the configured or flagged path.
func openStore(cfg config.Config) (*store.Store, error) {
	path := flagDB
	if path == "" {
		path = config.DatabasePath(cfg)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return s, nil
}

// requireUser loads the local profile or tells the user to run setup.
func requireUser(s *store.Store) (*model.User, error) {
	u, err := s.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if u == nil {
		return nil, errors.New("no profile found — run `trucost setup` first")
	}
	return u, nil
}

// newGeminiClient builds an API client from config, or explains how to
// configure one.
func newGeminiClient(cfg config.Config) (*gemini.Client, error) {
	key := config.GetGeminiKey(cfg)
	c := gemini.NewClient(key, cfg.Gemini.BaseURL, cfg.Gemini.TextModel, cfg.Gemini.VideoModel)
	if c == nil {
		return nil, errors.New("no Gemini API key configured — set GEMINI_API_KEY or add it to " + config.Path())
	}
	return c, nil
}

// resolveCategory maps a category name to its id for the user. An
// empty name picks the user's first category.
func resolveCategory(s *store.Store, userID, name string) (string, error) {
	if name == "" {
		cats, err := s.ListCategories(userID)
		if err != nil {
			return "", err
		}
		if len(cats) == 0 {
			return "", nil
		}
		return cats[0].ID, nil
	}

	cat, err := s.CategoryByName(userID, name)
	if err != nil {
		return "", err
	}
	if cat == nil {
		return "", fmt.Errorf("unknown category %q — see `trucost categories`", name)
	}
	return cat.ID, nil
}

// categoryNames returns an id -> name map for ledger display. Dangling
// ids resolve to "Uncategorized".
func categoryNames(s *store.Store, userID string) (map[string]string, error) {
	cats, err := s.ListCategories(userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

func categoryName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Uncategorized"
}

func runOverview(_ *cobra.Command, _ []string) error {
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
	fmt.Println(cli.RenderTitle("TRUCOST"))
	fmt.Println()
	fmt.Println(cli.RenderStat("Profile", fmt.Sprintf("%s <%s>", user.Name, user.Email)))
	fmt.Println(cli.RenderStat("Wage", fmt.Sprintf("%s/%s", cli.FormatMoney(symbol, user.DefaultWage), wageSuffix(user.WageType))))
	fmt.Println(cli.RenderStat("Effective hourly", cli.FormatMoney(symbol, profile.EffectiveHourly)))
	fmt.Println()

	goal, err := s.GoalForUser(user.ID)
	if err != nil {
		return err
	}
	if goal == nil {
		fmt.Println(cli.Muted("  No savings goal yet — try `trucost goal set`."))
	} else {
		printGoalCard(*goal, symbol)
	}

	decisions, err := s.ListDecisions(user.ID, store.DecisionFilter{})
	if err != nil {
		return err
	}

	var totalHours float64
	var totalDelay int
	for _, d := range decisions {
		totalHours += d.ComputedHours
		totalDelay += d.ComputedGoalDelayDays
	}

	fmt.Println()
	fmt.Println(cli.RenderStat("Decisions", cli.FormatNumber(int64(len(decisions)))))
	fmt.Println(cli.RenderStat("Life spent", cli.FormatHours(totalHours)))
	fmt.Println(cli.RenderStat("Goal delayed", cli.FormatDelay(totalDelay)))
	fmt.Println()

	return nil
}

func wageSuffix(wt model.WageType) string {
	if wt == model.WageYearly {
		return "yr"
	}
	return "hr"
}
