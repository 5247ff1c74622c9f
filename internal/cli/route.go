package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// routeCommand creates the one-shot route query command.
func (c *CLI) routeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the cheapest route between two stations",
		Long: `Find the cheapest route between two stations.

Station names are matched case-insensitively. The journey is printed with
its fare, travel time and interchanges, or as JSON with --json.`,
		Example: `  metroroute route "Majlis Park" Dwarka
  metroroute route welcome "anand vihar isbt" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := c.loadPlanner(ctx)
			if err != nil {
				return err
			}

			j, err := p.Plan(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(j)
			}
			printJourney(c.out, j)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the journey as JSON")

	return cmd
}
