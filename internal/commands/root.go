package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trendify-core/client/internal/api"
	"github.com/trendify-core/client/internal/session"
	logx "github.com/trendify-core/client/pkg/logger"
)

// cli holds flag values and the dependencies built before each subcommand.
type cli struct {
	envFile     string
	apiURL      string
	sessionKind string
	quiet       bool

	cfg     AppConfig
	api     *api.Client
	session session.Store
	closers []func() error
}

func Execute(ctx context.Context) error {
	root, c := newRootCmd()
	return c.execute(ctx, root)
}

// execute runs root and releases whatever setup opened, also when the
// command fails; cobra skips post-run hooks after a RunE error.
func (c *cli) execute(ctx context.Context, root *cobra.Command) error {
	defer func() {
		if err := c.close(); err != nil {
			logx.Warn().Err(err).Msg("failed to release session store")
		}
	}()
	return root.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "trendify",
		Short:         "Trendify shop client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().StringVar(&c.apiURL, "api", "", "API base URL (overrides API_BASE_URL)")
	root.PersistentFlags().StringVar(&c.sessionKind, "session", "", "session store: memory|file|redis (overrides SESSION_STORE)")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "only log warnings and errors")

	root.AddCommand(
		registerCmd(c),
		loginCmd(c),
		logoutCmd(c),
		homeCmd(c),
		favoritesCmd(c),
		favoriteCmd(c),
		cartCmd(c),
		cartToggleCmd(c),
		summaryCmd(c),
		toolCmd(c),
		fakeServerCmd(c),
	)
	return root, c
}

func (c *cli) setup(ctx context.Context, logOut io.Writer) error {
	cfg, err := loadConfig(c.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.apiURL != "" {
		cfg.API.BaseURL = c.apiURL
	}
	if c.sessionKind != "" {
		cfg.Session.Store = c.sessionKind
	}
	c.cfg = cfg

	logx.Init(logx.LoggerOpts{Environment: cfg.Env(), Output: logOut, Quiet: c.quiet})

	store, closer, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	c.session = store
	if closer != nil {
		c.closers = append(c.closers, closer)
	}

	c.api = api.NewClient(cfg.API, api.WithTokenSource(store))
	logx.Debug().Str("api", cfg.API.BaseURL).Str("env", cfg.Env().String()).Msg("client configured")
	return nil
}

func (c *cli) close() error {
	var first error
	for _, fn := range c.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}
