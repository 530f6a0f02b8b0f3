package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartstyle/pkg/cache"
	"github.com/matzehuels/chartstyle/pkg/server"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	cacheDir      string
	noCache       bool
	ttl           time.Duration
}

// serveCommand runs the HTTP resolve API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the style resolution HTTP API",
		Long: `Serve starts an HTTP server that resolves chart configurations posted to
/resolve and lists the registered palettes under /palettes.

Responses are cached on disk by default. Use --redis to share a cache between
several instances, or --no-cache to disable caching.

Examples:
  chartstyle serve
  chartstyle serve --addr :9000 --redis localhost:6379
  curl -X POST --data-binary @chart.toml 'localhost:8080/resolve?select=in'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.openCache(ctx, opts)
			if err != nil {
				return err
			}

			srv := server.New(
				server.WithRegistry(c.registry()),
				server.WithCache(store, opts.ttl),
				server.WithLogger(c.Logger),
			)
			defer srv.Close()

			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory (default: XDG cache dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable response caching")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", server.DefaultCacheTTL, "cache entry lifetime")
	cmd.MarkFlagsMutuallyExclusive("redis", "cache-dir", "no-cache")

	return cmd
}

// openCache picks the response cache backend from opts.
func (c *CLI) openCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		c.Logger.Debug("response cache disabled")
		return cache.NewNullCache(), nil

	case opts.redisAddr != "":
		spinner := newSpinner(ctx, "Connecting to redis at "+opts.redisAddr+"...")
		spinner.Start()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     opts.redisAddr,
			Password: opts.redisPassword,
			DB:       opts.redisDB,
			Prefix:   appName + ":",
		})
		if err != nil {
			spinner.StopWithError("Redis unavailable")
			return nil, err
		}
		spinner.StopWithSuccess("Connected to redis")
		return rc, nil

	default:
		dir := opts.cacheDir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("file cache", "dir", dir)
		return fc, nil
	}
}
