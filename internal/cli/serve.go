package cli

import (
	"github.com/spf13/cobra"

	"github.com/phonefixpro/site/internal/devreload"
	"github.com/phonefixpro/site/internal/server"
)

func serveCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, logger, st, err := setup(cmd.Context(), *configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if cfg.Templates.Watch {
				w, err := devreload.New(cfg.Templates.Dir, st, logger)
				if err != nil {
					return err
				}
				go func() {
					if err := w.Run(ctx); err != nil {
						logger.ErrorContext(ctx, "template watcher stopped", "error", err)
					}
				}()
				logger.InfoContext(ctx, "watching templates", "dir", cfg.Templates.Dir)
			}

			srv := server.New(st, logger).HTTPServer(cfg.Server)
			return server.Run(ctx, srv, cfg.Server.ShutdownTimeout, logger)
		},
	}
}
