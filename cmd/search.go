package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/gemini"
	"github.com/trucost-app/trucost/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Look up typical prices with Gemini",
	Long:  "Asks Gemini for typical prices and model matches for an item, grounded in web search. Results are suggestions only.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if len(query) < 2 {
		return errors.New("query too short")
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

	client, err := newGeminiClient(cfg)
	if err != nil {
		return err
	}

	if !cfg.General.Quiet {
		fmt.Fprintf(os.Stderr, "  Searching prices for %q...\n", query)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := client.SearchPrice(ctx, query, user.Currency)
	if err != nil {
		if errors.Is(err, gemini.ErrUnauthorized) {
			return errors.New("Gemini rejected the API key — check GEMINI_API_KEY")
		}
		if errors.Is(err, gemini.ErrRateLimited) {
			return errors.New("rate limited by Gemini — try again in a minute")
		}
		return fmt.Errorf("price search failed: %w", err)
	}

	symbol := model.CurrencySymbol(user.Currency)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MATCHES & SOURCES"))
	fmt.Println()

	if len(result.Candidates) == 0 {
		fmt.Println(cli.Muted("  No structured matches found."))
		if result.RawText != "" {
			fmt.Println(cli.Muted("  " + firstLine(result.RawText)))
		}
	} else {
		rows := make([][]string, 0, len(result.Candidates))
		for _, c := range result.Candidates {
			rows = append(rows, []string{c.Name, cli.FormatMoney(symbol, c.Price), c.Description})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Product", "Price", "Description"},
			Rows:    rows,
		}))
	}

	if len(result.Sources) > 0 {
		fmt.Println()
		fmt.Println(cli.Muted("  Sources:"))
		for _, src := range result.Sources {
			title := src.Title
			if title == "" {
				title = "Source"
			}
			fmt.Printf("    %s %s\n", cli.Muted("•"), fmt.Sprintf("%s — %s", title, src.URI))
		}
	}
	fmt.Println()

	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
