package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metroroute/internal/server"
	"github.com/matzehuels/metroroute/pkg/planner"
	"github.com/matzehuels/metroroute/pkg/render"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route planner as a JSON HTTP API",
		Long: `Serve the route planner as a JSON HTTP API.

Endpoints:
  GET  /healthz                      network summary
  GET  /stations                     stations with lines and degree
  GET  /stations/{name}/reachable    route weights from a station
  GET  /lines                        line table
  GET  /route?from=A&to=B            cheapest journey
  GET  /map.svg[?from=A&to=B]        network map
  POST /reload                       reload the network file

The server stops gracefully on SIGINT.`,
		Example: `  metroroute serve
  metroroute serve --addr 127.0.0.1:9000 --network mynetwork.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := c.loadPlanner(ctx)
			if err != nil {
				return err
			}

			ch, err := c.openCache(ctx)
			if err != nil {
				return err
			}
			defer ch.Close()

			cfg := c.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}

			network := c.Config.Network
			srv := server.New(p, server.Options{
				Logger:      c.Logger,
				Renderer:    render.NewRenderer(ch, c.Config.Cache.TTL),
				CORSOrigins: cfg.CORSOrigins,
				Load: func(ctx context.Context) (*planner.Planner, error) {
					return planner.Load(ctx, network)
				},
			})

			printInfo(c.out, "Serving %s on %s", StyleHighlight.Render(p.Name()), cfg.Addr)
			return srv.ListenAndServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
