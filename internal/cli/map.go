package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
	"github.com/matzehuels/metroroute/pkg/planner"
	"github.com/matzehuels/metroroute/pkg/render"
)

// mapOpts holds options for the map command.
type mapOpts struct {
	route   string
	output  string
	format  string
	weights bool
}

// mapCommand creates the network map command.
func (c *CLI) mapCommand() *cobra.Command {
	opts := mapOpts{format: string(render.FormatSVG)}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Draw the network as a Graphviz map",
		Long: `Draw the network as a Graphviz map.

Edges are coloured by line and interchanges are drawn as double circles.
With --route the cheapest route between two stations is highlighted.
SVG output is cached by content, so redrawing an unchanged map is instant.`,
		Example: `  metroroute map -o delhi.svg
  metroroute map --route "Majlis Park:Dwarka" -o journey.svg
  metroroute map --format dot --weights`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMap(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.route, "route", "", "highlight the route FROM:TO")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges with their weight")

	return cmd
}

func (c *CLI) runMap(ctx context.Context, opts mapOpts) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	p, err := c.loadPlanner(ctx)
	if err != nil {
		return err
	}

	dopts := render.Options{Title: p.Name(), Weights: opts.weights}
	if opts.route != "" {
		j, err := planRouteArg(ctx, p, opts.route)
		if err != nil {
			return err
		}
		dopts.Route = j.Stations
		dopts.Title = j.From + " " + iconArrow + " " + j.To
	}
	dot := render.ToDOT(p.Graph(), p.Lines(), dopts)

	ch, err := c.openCache(ctx)
	if err != nil {
		return err
	}
	defer ch.Close()
	r := render.NewRenderer(ch, c.Config.Cache.TTL)

	prog := newProgress(loggerFromContext(ctx))
	var data []byte
	if format == render.FormatSVG && opts.output != "" {
		spin := newSpinnerWithContext(ctx, "Rendering map...")
		spin.Start()
		data, err = r.Render(ctx, dot, format)
		spin.Stop()
	} else {
		data, err = r.Render(ctx, dot, format)
	}
	if err != nil {
		return err
	}
	prog.debug("Rendered map")

	if opts.output == "" {
		_, err := c.out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess(c.out, "Map written")
	printFile(c.out, opts.output)
	return nil
}

// planRouteArg plans a "FROM:TO" route argument.
func planRouteArg(ctx context.Context, p *planner.Planner, arg string) (*planner.Journey, error) {
	from, to, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, merrors.New(merrors.ErrCodeInvalidInput, "--route must be FROM:TO, got %q", arg)
	}
	return p.Plan(ctx, strings.TrimSpace(from), strings.TrimSpace(to))
}
