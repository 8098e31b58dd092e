package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabe/scrub/internal/tui"
)

var logwindowCmd = &cobra.Command{
	Use:   "logwindow",
	Short: "Open a detached log-only popout",
	Long: `Open the simple log popout window. It shows the event feed and accepts
quick notes, on its own sync channel separate from the cockpit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if err := tui.RunLogWindow(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logwindowCmd)
}
