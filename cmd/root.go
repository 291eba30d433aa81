package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storyboard/internal/app"
	"storyboard/internal/gemini"
	"storyboard/pkg/config"
)

var (
	verbose bool
	lang    string
)

var rootCmd = &cobra.Command{
	Use:   "storyboard",
	Short: "Build storyboards with Gemini",
	Long: `Storyboard extracts visual features from reference images, drafts shot
outlines, renders frames and suggests audio for each shot using the Gemini API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "", "Output language: zh or en (default from config)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}

func loadStudio(ctx context.Context) (*app.Studio, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	return app.BuildStudio(ctx, cfg)
}

func language(cfg *config.Config) (gemini.Language, error) {
	if lang != "" {
		return gemini.ParseLanguage(lang)
	}
	return gemini.ParseLanguage(cfg.Storyboard.Language)
}
