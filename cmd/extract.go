package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	extractImage  string
	extractRole   string
	extractIntent string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Describe the visual features of a reference image",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractImage, "image", "i", "", "Reference image path")
	extractCmd.Flags().StringVar(&extractRole, "role", "Storyboard artist", "Role the model should take")
	extractCmd.Flags().StringVar(&extractIntent, "intent", "", "What the reference should be used for")
	_ = extractCmd.MarkFlagRequired("image")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	studio, err := loadStudio(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = studio.Close() }()
	l, err := language(studio.Config())
	if err != nil {
		return err
	}

	var features string
	err = runWithSpinner("Extracting visual features", func() error {
		features, err = studio.Extract(ctx, extractImage, extractRole, extractIntent, l)
		return err
	})
	if err != nil {
		return err
	}

	if features == "" {
		fmt.Println(warnStyle.Render("The model returned no description"))
		return nil
	}
	fmt.Println(features)
	return nil
}
