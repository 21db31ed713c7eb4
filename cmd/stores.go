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
)

var storesCmd = &cobra.Command{
	Use:   "stores <item>",
	Short: "Find nearby stores selling an item",
	Long:  "Asks Gemini, grounded in Google Maps, for stores near the given coordinates that carry the item.",
	Args:  cobra.ExactArgs(1),
	RunE:  runStores,
}

var (
	flagStoresLat float64
	flagStoresLng float64
)

func init() {
	storesCmd.Flags().Float64Var(&flagStoresLat, "lat", 0, "latitude to search around")
	storesCmd.Flags().Float64Var(&flagStoresLng, "lng", 0, "longitude to search around")
	_ = storesCmd.MarkFlagRequired("lat")
	_ = storesCmd.MarkFlagRequired("lng")
	rootCmd.AddCommand(storesCmd)
}

func runStores(_ *cobra.Command, args []string) error {
	item := strings.TrimSpace(args[0])
	if item == "" {
		return errors.New("item name is empty")
	}
	if flagStoresLat < -90 || flagStoresLat > 90 || flagStoresLng < -180 || flagStoresLng > 180 {
		return errors.New("coordinates out of range")
	}

	cfg := loadConfig()
	client, err := newGeminiClient(cfg)
	if err != nil {
		return err
	}

	if !cfg.General.Quiet {
		fmt.Fprintf(os.Stderr, "  Looking for stores near %.4f, %.4f...\n", flagStoresLat, flagStoresLng)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := client.FindStores(ctx, item, flagStoresLat, flagStoresLng)
	if err != nil {
		if errors.Is(err, gemini.ErrUnauthorized) {
			return errors.New("Gemini rejected the API key — check GEMINI_API_KEY")
		}
		if errors.Is(err, gemini.ErrRateLimited) {
			return errors.New("rate limited by Gemini — try again in a minute")
		}
		return fmt.Errorf("store search failed: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("NEARBY STORES"))
	fmt.Println()
	if result.Text == "" {
		fmt.Println(cli.Muted("  Nothing found nearby."))
	} else {
		for _, line := range strings.Split(strings.TrimSpace(result.Text), "\n") {
			fmt.Println("  " + line)
		}
	}
	if len(result.Links) > 0 {
		fmt.Println()
		fmt.Println(cli.Muted("  Maps links:"))
		for _, l := range result.Links {
			title := l.Title
			if title == "" {
				title = "Map"
			}
			fmt.Printf("    %s %s — %s\n", cli.Muted("•"), title, l.URI)
		}
	}
	fmt.Println()

	return nil
}
