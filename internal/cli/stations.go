package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/metroroute/pkg/planner"
)

// stationsCommand creates the station listing command.
func (c *CLI) stationsCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List stations, optionally with distances from one station",
		Long: `List stations.

Without flags every station is listed with the lines serving it. With
--from only stations reachable from that station are listed, cheapest
first, with their route weight.`,
		Example: `  metroroute stations
  metroroute stations --from "Majlis Park"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := c.loadPlanner(ctx)
			if err != nil {
				return err
			}

			if from == "" {
				fmt.Fprintln(c.out, stationsTable(p))
				return nil
			}

			stops, err := p.Reachable(ctx, from)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, stopsTable(stops))
			if n := p.Graph().StationCount() - len(stops); n > 0 {
				printWarning(c.out, "%d station(s) unreachable from %s", n, stops[0].Station)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "show route weights from this station")

	return cmd
}

func stationsTable(p *planner.Planner) string {
	g, t := p.Graph(), p.Lines()
	var rows [][]string
	for _, id := range g.Stations() {
		served := strings.Join(t.LinesOf(id), ", ")
		if served == "" {
			served = "—"
		}
		degree := 0
		if st, ok := g.Station(id); ok {
			degree = st.Degree()
		}
		rows = append(rows, []string{id, served, fmt.Sprint(degree)})
	}
	return plainTable([]string{"Station", "Lines", "Neighbors"}, rows)
}

func stopsTable(stops []planner.Stop) string {
	rows := make([][]string, len(stops))
	for i, s := range stops {
		rows[i] = []string{s.Station, fmt.Sprint(s.Weight)}
	}
	return plainTable([]string{"Station", "Weight"}, rows)
}

func plainTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				return base.Foreground(colorGray)
			}
			return base
		}).
		Render()
}
