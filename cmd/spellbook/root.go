package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/clients/external"
	"github.com/KirkDiggler/spellbook/internal/config"
	"github.com/KirkDiggler/spellbook/internal/logging"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/catalog"
	"github.com/KirkDiggler/spellbook/internal/redis"
	"github.com/KirkDiggler/spellbook/internal/repositories/spells"
)

// serviceFactory builds the catalog service and a cleanup func for it
type serviceFactory func(ctx context.Context, cfg *config.Config, noCache bool) (catalog.Service, func(), error)

// rootOptions holds the persistent flags
type rootOptions struct {
	verbose   bool
	logFile   string
	apiURL    string
	redisAddr string
	noCache   bool

	factory serviceFactory
	cfg     *config.Config
	logOut  io.Closer
}

func newRootOptions(factory serviceFactory) *rootOptions {
	return &rootOptions{factory: factory}
}

// execute runs cmd and always closes the log file opened for opts.
// cobra skips post-run hooks when RunE fails.
func execute(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	err := cmd.ExecuteContext(ctx)
	if closeErr := opts.closeLog(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spellbook",
		Short: "D&D 5e spell reference",
		Long: `Spellbook looks up D&D 5e spells from the dnd5eapi.co API.

Run without a subcommand to open the interactive browser. Settings come from
SPELLBOOK_* environment variables and can be overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.StringVar(&opts.apiURL, "api-url", "", "Override SPELLBOOK_API_BASE_URL")
	flags.StringVar(&opts.redisAddr, "redis", "", "Override SPELLBOOK_REDIS_ADDR (comma separated for a cluster)")
	flags.BoolVar(&opts.noCache, "no-cache", false, "Bypass the spell cache")

	rootCmd.AddCommand(newBrowseCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newCacheCmd(opts))

	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.apiURL != "" {
		cfg.APIBaseURL = o.apiURL
	}
	if o.redisAddr != "" {
		cfg.RedisAddrs = strings.Split(o.redisAddr, ",")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	var out io.Writer = cmd.ErrOrStderr()
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.logOut = f
		out = f
	} else if isBrowse(cmd) {
		// the browser owns the terminal
		out = io.Discard
	}

	logging.Install(logging.Options{
		Writer:  out,
		Level:   cfg.LogLevel,
		Verbose: o.verbose,
	})

	return nil
}

func (o *rootOptions) closeLog() error {
	if o.logOut == nil {
		return nil
	}
	err := o.logOut.Close()
	o.logOut = nil
	return err
}

func (o *rootOptions) service(ctx context.Context) (catalog.Service, func(), error) {
	return o.factory(ctx, o.cfg, o.noCache)
}

func isBrowse(cmd *cobra.Command) bool {
	return cmd.Name() == "browse" || !cmd.HasParent()
}

// defaultServiceFactory wires the API client and the configured cache
func defaultServiceFactory(ctx context.Context, cfg *config.Config, noCache bool) (catalog.Service, func(), error) {
	client, err := external.New(cfg.ExternalConfig())
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var repo spells.Repository
	switch {
	case noCache:
		slog.Debug("Spell cache disabled")

	case cfg.UseRedis():
		redisClient, err := redis.Connect(ctx, cfg.RedisAddrs, &redis.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cleanup = func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}
		repo, err = spells.NewRedis(&spells.RedisConfig{
			Client: redisClient,
			TTL:    cfg.CacheTTL,
		})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		slog.Debug("Using redis spell cache", "addrs", cfg.RedisAddrs)

	default:
		repo, err = spells.NewInMemory(&spells.InMemoryConfig{TTL: cfg.CacheTTL})
		if err != nil {
			return nil, nil, err
		}
	}

	service, err := catalog.New(&catalog.Config{
		ExternalClient: client,
		SpellRepo:      repo,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return service, cleanup, nil
}
