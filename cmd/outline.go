package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storyboard/internal/app"
)

var (
	outlineContext     string
	outlineContextFile string
	outlineShots       int
	outlineRaw         bool
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Draft a multi-shot storyboard outline",
	RunE:  runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineContext, "context", "c", "", "Visual context, e.g. output of extract")
	outlineCmd.Flags().StringVarP(&outlineContextFile, "context-file", "f", "", "Read visual context from a file")
	outlineCmd.Flags().IntVarP(&outlineShots, "shots", "n", 0, "Number of shots (default from config)")
	outlineCmd.Flags().BoolVar(&outlineRaw, "raw", false, "Print the model output without parsing shots")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	visualContext := outlineContext
	if outlineContextFile != "" {
		data, err := os.ReadFile(outlineContextFile)
		if err != nil {
			return fmt.Errorf("read context file: %w", err)
		}
		visualContext = string(data)
	}
	if visualContext == "" {
		return fmt.Errorf("provide --context or --context-file")
	}

	studio, err := loadStudio(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = studio.Close() }()
	l, err := language(studio.Config())
	if err != nil {
		return err
	}

	shotCount := outlineShots
	if shotCount == 0 {
		shotCount = studio.Config().Storyboard.ShotCount
	}

	var result *app.OutlineResult
	err = runWithSpinner(fmt.Sprintf("Drafting %d-shot outline", shotCount), func() error {
		result, err = studio.Outline(ctx, visualContext, shotCount, l)
		return err
	})
	if err != nil {
		return err
	}

	if result.Text == "" {
		fmt.Println(warnStyle.Render("The model returned no outline"))
		return nil
	}
	if outlineRaw || result.Outline.IsEmpty() {
		fmt.Println(result.Text)
		return nil
	}

	for _, shot := range result.Outline.Shots {
		heading := fmt.Sprintf("Shot %d", shot.Number)
		if shot.Title != "" {
			heading += " · " + shot.Title
		}
		fmt.Println(titleStyle.Render(heading))
		printField("Action", shot.Action)
		printField("Camera Movement", shot.Camera)
		printField("Atmosphere", shot.Atmosphere)
	}
	return nil
}
