package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabe/scrub/internal/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Launch the main review console",
	Long: `Launch the review console: playback grid, editable procedure timeline and
event logger. The console owns the session state and hosts the sync hub that
detached windows connect to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		if err := tui.Run(cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
