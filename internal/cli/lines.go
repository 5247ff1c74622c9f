package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// linesCommand creates the line listing command.
func (c *CLI) linesCommand() *cobra.Command {
	var showStations bool

	cmd := &cobra.Command{
		Use:   "lines",
		Short: "List the network's lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}

			t := p.Lines()
			fmt.Fprintln(c.out, linesTable(t))
			if ic := t.Interchanges(); len(ic) > 0 {
				printInfo(c.out, "Interchanges: %s", strings.Join(ic, ", "))
			}
			if showStations {
				for _, l := range t.Lines() {
					fmt.Fprintln(c.out)
					fmt.Fprintln(c.out, StyleTitle.Render(l.Name))
					printDetail(c.out, "%s", strings.Join(l.Stations, " "+iconArrow+" "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showStations, "stations", false, "also list each line's stations")

	return cmd
}
