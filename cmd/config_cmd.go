package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Println()
	fmt.Println(cli.RenderTitle("CONFIG"))
	fmt.Println()
	fmt.Println(cli.RenderStat("Config file", config.Path()))
	fmt.Println(cli.RenderStat("Database", config.DatabasePath(cfg)))
	fmt.Println(cli.RenderStat("Gemini key", maskKey(config.GetGeminiKey(cfg))))
	fmt.Println(cli.RenderStat("Text model", cfg.Gemini.TextModel))
	fmt.Println(cli.RenderStat("Video model", cfg.Gemini.VideoModel))
	fmt.Println()

	return nil
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
