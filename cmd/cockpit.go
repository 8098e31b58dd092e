package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabe/scrub/internal/tui"
)

var cockpitCmd = &cobra.Command{
	Use:   "cockpit",
	Short: "Open a detached cockpit window",
	Long: `Open the detached cockpit: the full event and annotation list in its own
terminal, kept in sync with a running review console. Requires 'scrub review'
to be running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if err := tui.RunCockpit(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cockpitCmd)
}
