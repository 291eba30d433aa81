package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storyboard/internal/gemini"
)

var (
	audioAction   string
	audioDuration float64
	audioBGM      string
	audioDialog   string
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Suggest ambient audio, SFX, BGM and dialog for a shot",
	RunE:  runAudio,
}

func init() {
	audioCmd.Flags().StringVarP(&audioAction, "action", "a", "", "Shot action description")
	audioCmd.Flags().Float64VarP(&audioDuration, "duration", "d", 4, "Shot duration in seconds")
	audioCmd.Flags().StringVar(&audioBGM, "bgm", "", "Current background music reference")
	audioCmd.Flags().StringVar(&audioDialog, "dialog", "", "Current dialog reference")
	_ = audioCmd.MarkFlagRequired("action")
	rootCmd.AddCommand(audioCmd)
}

func runAudio(cmd *cobra.Command, args []string) error {
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

	var suggestion *gemini.AudioSuggestion
	err = runWithSpinner("Syncing audio", func() error {
		suggestion, err = studio.SyncAudio(ctx, gemini.AudioRequest{
			Action:   audioAction,
			Duration: audioDuration,
			Language: l,
			BGM:      audioBGM,
			Dialog:   audioDialog,
		})
		return err
	})
	if err != nil {
		return err
	}

	if suggestion == nil {
		fmt.Println(warnStyle.Render("The model returned no usable suggestion"))
		return nil
	}

	printField("Ambient", suggestion.Audio)
	printField("SFX", suggestion.SFX)
	printField("BGM", suggestion.BGM)
	printField("Dialog", suggestion.Dialog)
	return nil
}
