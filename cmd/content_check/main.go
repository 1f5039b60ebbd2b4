// Command content_check validates a directory of content YAML before it is
// copied into internal/content/data, and prints what it found.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"consult-hub/internal/config"
	"consult-hub/internal/content"
	"consult-hub/internal/domain"
	"consult-hub/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var threshold int

var rootCmd = &cobra.Command{
	Use:          "content_check [dir]",
	Short:        "Validate questionnaires, products and the sitemap",
	Long:         "Loads content the way the API does at startup. Without a directory the embedded content is checked.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.Flags().IntVar(&threshold, "threshold", 0, "recommendation threshold override (0 keeps each questionnaire's own)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := logger.Initialize(config.LoggerConfig{Level: "warn", Env: "development"}); err != nil {
		return err
	}
	defer logger.Sync()

	opts := content.Options{ThresholdOverride: threshold}

	var (
		store  *content.Store
		err    error
		source = "embedded"
	)
	if len(args) == 1 {
		source = args[0]
		store, err = content.Load(cmd.Context(), os.DirFS(args[0]), opts)
	} else {
		store, err = content.LoadEmbedded(cmd.Context(), opts)
	}
	if err != nil {
		logger.Get().Error("Content check failed", zap.String("source", source), zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Content OK (%s)\n", source)
	for _, q := range store.Questionnaires() {
		fmt.Fprintf(out, "  questionnaire %-16s %-9s %d categories, %d items, threshold %d\n",
			q.ID, q.Kind, len(q.Categories), countItems(q), q.Threshold)
	}
	fmt.Fprintf(out, "  products      %d\n", len(store.Products()))
	fmt.Fprintf(out, "  pages         %d\n", len(store.Pages()))
	return nil
}

func countItems(q *domain.Questionnaire) int {
	n := 0
	for _, c := range q.Categories {
		n += len(c.Items)
	}
	return n
}
