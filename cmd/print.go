package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epilanthanomai/chartsync/internal/billboard"
	"github.com/epilanthanomai/chartsync/internal/cache"
	"github.com/epilanthanomai/chartsync/internal/config"
	"github.com/epilanthanomai/chartsync/internal/render"
	"github.com/epilanthanomai/chartsync/internal/util"
)

var printCmd = &cobra.Command{
	Use:   "print [date]",
	Short: "Print a chart for the configured or given week",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := util.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	strategy, mode, err := resolveStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	week := cfg.Billboard.Week
	if len(args) > 0 {
		week = args[0]
	}
	if week == "" {
		return fmt.Errorf("no chart date given and no billboard.week configured")
	}

	client := billboard.New(billboard.Options{
		UserAgent:   cfg.UserAgent,
		Strategy:    strategy,
		Store:       cache.NewStore(cfg.ChartCacheDir(), logger),
		WebCacheDir: cfg.WebCacheDir(),
		Logger:      logger,
	})

	result, err := client.Chart(cfg.Billboard.Chart, week)
	if err != nil {
		return err
	}

	for _, line := range render.New(mode).Lines(result) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// resolveStrategy maps the configured strategy name to its extraction
// variant and the movement mode its fields support.
func resolveStrategy(name string) (billboard.Strategy, render.Mode, error) {
	switch name {
	case "article":
		return billboard.ArticleStrategy{}, render.ModeRankDelta, nil
	case "embedded":
		return billboard.EmbeddedStrategy{}, render.ModePeakMarker, nil
	default:
		return nil, 0, fmt.Errorf("unknown extraction strategy %q (valid: article, embedded)", name)
	}
}
