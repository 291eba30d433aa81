package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "List rendered frames",
	RunE:  runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
}

func runFrames(cmd *cobra.Command, args []string) error {
	studio, err := loadStudio(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = studio.Close() }()

	frames, err := studio.Frames(cmd.Context())
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		fmt.Println(infoStyle.Render("No frames yet"))
		return nil
	}
	for _, frame := range frames {
		fmt.Println(frame)
	}
	return nil
}
