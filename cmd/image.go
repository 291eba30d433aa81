package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"storyboard/internal/field"
	"storyboard/internal/gemini"
	"storyboard/internal/inputgroup"
)

var (
	imagePrompt        string
	imageStyle         string
	imageRatio         string
	imageModel         string
	imageName          string
	overlayText        string
	overlayColor       string
	overlayTypography  string
	overlayPreset      string
	overlayInteractive bool
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Render a storyboard frame",
	RunE:  runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imagePrompt, "prompt", "p", "", "Scene description")
	imageCmd.Flags().StringVarP(&imageStyle, "style", "s", "", "Art style (default from config)")
	imageCmd.Flags().StringVarP(&imageRatio, "ratio", "r", "", "Aspect ratio W:H (default from config)")
	imageCmd.Flags().StringVarP(&imageModel, "model", "m", "", "Image model override")
	imageCmd.Flags().StringVarP(&imageName, "name", "o", "", "Output name without extension")
	imageCmd.Flags().StringVar(&overlayText, "overlay-text", "", "Caption rendered into the frame")
	imageCmd.Flags().StringVar(&overlayColor, "overlay-color", "", "Caption font color (default from config)")
	imageCmd.Flags().StringVar(&overlayTypography, "overlay-typography", "", "Custom caption typography")
	imageCmd.Flags().StringVar(&overlayPreset, "overlay-preset", "", "Caption typography preset")
	imageCmd.Flags().BoolVar(&overlayInteractive, "pick-typography", false, "Choose caption typography interactively")
	_ = imageCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	studio, err := loadStudio(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = studio.Close() }()
	cfg := studio.Config()

	req := gemini.ImageRequest{
		Prompt:      imagePrompt,
		Style:       valueOr(imageStyle, cfg.Storyboard.Style),
		AspectRatio: valueOr(imageRatio, cfg.Storyboard.AspectRatio),
		Model:       imageModel,
	}

	if overlayText != "" {
		typography := field.State{Custom: overlayTypography, Selected: overlayPreset}
		if overlayInteractive {
			typography, err = pickTypography(typography, cfg.Overlay.TypographyPresets)
			if err != nil {
				return err
			}
		}
		req.Overlay = gemini.TextOverlay{
			Enabled: true,
			Content: overlayText,
			Style:   typography,
			Color:   valueOr(overlayColor, cfg.Overlay.Color),
		}
	}

	name := imageName
	if name == "" {
		name = "frame-" + time.Now().Format("20060102-150405")
	}

	var location string
	err = runWithSpinner("Rendering frame", func() error {
		location, err = studio.RenderShot(ctx, req, name)
		return err
	})
	if err != nil {
		return err
	}

	if location == "" {
		fmt.Println(warnStyle.Render("The model returned no image"))
		return nil
	}
	fmt.Println(infoStyle.Render("Saved " + location))
	return nil
}

func pickTypography(state field.State, presets []string) (field.State, error) {
	group := inputgroup.New(inputgroup.Props{
		Label:   "Typography",
		State:   state,
		Options: presets,
		OnChange: func(p field.Patch) {
			state = state.Apply(p)
		},
	})
	if err := group.Run(); err != nil {
		return state, err
	}
	return state, nil
}

func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
