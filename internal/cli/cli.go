package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/metroroute/internal/config"
	"github.com/matzehuels/metroroute/pkg/buildinfo"
	"github.com/matzehuels/metroroute/pkg/cache"
	"github.com/matzehuels/metroroute/pkg/observability"
	"github.com/matzehuels/metroroute/pkg/planner"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	in  io.Reader
	out io.Writer

	configPath  string
	networkPath string
	verbose     bool
	noCache     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetIO redirects command input and output.
func (c *CLI) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "metroroute",
		Short: "Metroroute plans the cheapest route across a metro network",
		Long: `Metroroute finds the lowest-weight route between two stations of a metro
network and reports the fare, the travel time and whether a line change is
needed. It ships with the Delhi Metro Pink and Blue lines and can load other
networks from TOML, YAML or JSON files.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/metroroute/config.toml)")
	flags.StringVarP(&c.networkPath, "network", "n", "", "network data file (.toml, .yaml, .json); built-in Delhi Metro if empty")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the render cache")

	root.AddCommand(c.planCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.linesCommand())
	root.AddCommand(c.stationsCommand())
	root.AddCommand(c.mapCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration and applies flag overrides before any command
// runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.networkPath != "" {
		cfg.Network = c.networkPath
	}
	if c.noCache {
		cfg.Cache.Disabled = true
	}
	c.Config = cfg

	level := LogInfo
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		level = lvl
	}
	if c.verbose {
		level = LogDebug
		registerLogHooks(c.Logger)
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// loadPlanner builds a planner from the configured network.
func (c *CLI) loadPlanner(ctx context.Context) (*planner.Planner, error) {
	prog := newProgress(loggerFromContext(ctx))
	p, err := planner.Load(ctx, c.Config.Network)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("Loaded %s: %d stations, %d connections",
		p.Name(), p.Graph().StationCount(), p.Graph().ConnectionCount())
	prog.debug("Network ready")
	return p, nil
}

// openCache opens the configured render cache. Failing to open a file
// cache is not fatal; rendering simply goes uncached.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	cc := c.Config.Cache
	dir, err := c.Config.CacheDirOrDefault()
	if err != nil && cc.RedisURL == "" && !cc.Memory {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, cache.Options{
		Disabled: cc.Disabled,
		Dir:      dir,
		RedisURL: cc.RedisURL,
		Memory:   cc.Memory,
	})
}

// registerLogHooks routes observability events to the debug log.
func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetRouteHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}
