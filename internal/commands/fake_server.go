package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/trendify-core/client/internal/fakeserver"
	logx "github.com/trendify-core/client/pkg/logger"
)

func fakeServerCmd(c *cli) *cobra.Command {
	var (
		addr   string
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Serve an in-memory Trendify API for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Env().IsProduction() {
				return errors.New("fake-server is not available in production")
			}
			if !c.cfg.Env().Verbose() {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           fakeserver.New(nil).Handler(prefix),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logx.Info().Str("addr", addr).Str("prefix", prefix).Msg("fake api listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logx.Info().Msg("shutting down fake api")
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&prefix, "prefix", "/api", "route prefix")
	return cmd
}
