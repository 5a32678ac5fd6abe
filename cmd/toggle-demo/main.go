// Command toggle-demo shows the control-props pattern: two switches
// synchronized through one shared control value, an uncontrolled
// switch for contrast, and a click limit after which the app stops
// accepting changes and the controlled pair freezes.
//
// Usage: toggle-demo [--max-clicks N] [--misuse]
// Quit with q.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg appConfig
	cmd := &cobra.Command{
		Use:   "toggle-demo",
		Short: "Demo of the control-props toggle component",
		Long: `toggle-demo renders two switches driven by one shared control value.
Toggling either one notifies the app, which updates the value both
render from - until the click limit is reached, after which the app
ignores changes and the pair freezes. An uncontrolled switch below
keeps working on its own state, and a reset restores everything.

Misuse of the pattern (switching modes, controlled without a change
handler) is reported in the footer.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newApp(cfg))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.MaxClicks, "max-clicks", 4, "clicks accepted before the app stops propagating changes")
	cmd.Flags().BoolVar(&cfg.Misuse, "misuse", false, "construct a deliberately misused switch to show the diagnostics")
	return cmd
}
