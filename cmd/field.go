package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"storyboard/internal/field"
	"storyboard/internal/inputgroup"
	"storyboard/pkg/config"
)

var (
	fieldLabel   string
	fieldOptions []string
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Edit a storyboard field with the auto/manual toggle",
	Long: `Opens the auto/manual field editor and prints the resulting state.
Presets default to the typography presets from config.yaml.`,
	RunE: runField,
}

func init() {
	fieldCmd.Flags().StringVar(&fieldLabel, "label", "Typography", "Field label")
	fieldCmd.Flags().StringSliceVar(&fieldOptions, "option", nil, "Preset option (repeatable)")
	rootCmd.AddCommand(fieldCmd)
}

func runField(cmd *cobra.Command, args []string) error {
	options := fieldOptions
	if len(options) == 0 {
		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		options = cfg.Overlay.TypographyPresets
	}

	var state field.State
	group := inputgroup.New(inputgroup.Props{
		Label:   fieldLabel,
		State:   state,
		Options: options,
		OnChange: func(p field.Patch) {
			slog.Debug("Field changed", "auto", p.Auto != nil, "custom", p.Custom != nil, "selected", p.Selected != nil)
			state = state.Apply(p)
		},
	})
	if err := group.Run(); err != nil {
		return err
	}

	fmt.Println(inputgroup.New(inputgroup.Props{Label: fieldLabel, State: state, Options: options}).View())
	switch {
	case state.Auto:
		fmt.Println(infoStyle.Render("Value will be generated"))
	case state.Value() != "":
		fmt.Println(infoStyle.Render("Value: " + state.Value()))
	default:
		fmt.Println(warnStyle.Render("No value set"))
	}
	return nil
}
