// Package cli wires the phonefixpro commands together.
package cli

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phonefixpro/site/internal/config"
	"github.com/phonefixpro/site/internal/logging"
	"github.com/phonefixpro/site/internal/render"
	"github.com/phonefixpro/site/internal/site"
)

// Execute runs the command line until it finishes or the process is
// interrupted, and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "phonefixpro",
		Short:        "PhoneFixPro one-page site",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./phonefixpro.yaml or /etc/phonefixpro/phonefixpro.yaml)")

	cmd.AddCommand(
		serveCmd(&configFile),
		renderCmd(&configFile),
		checkCmd(),
		contentCmd(),
	)
	return cmd
}

func loadConfig(file string) (*config.Config, error) {
	v, err := config.New(file)
	if err != nil {
		return nil, err
	}
	return config.Load(v)
}

// setup loads the configuration and builds the logger and site every
// rendering command needs. The returned context carries the logger.
func setup(ctx context.Context, configFile string, logs io.Writer) (context.Context, *config.Config, *slog.Logger, *site.Site, error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return ctx, nil, nil, nil, err
	}
	logger := logging.New(logs, cfg.Log)
	st := site.New(templates(cfg.Templates), cfg.Business)
	return render.LoggingContext(ctx, logger), cfg, logger, st, nil
}

// templates serves from the configured directory when there is one, and
// from the templates built into the binary otherwise.
func templates(cfg config.TemplatesConfig) fs.FS {
	if cfg.Dir == "" {
		return site.Templates()
	}
	return os.DirFS(cfg.Dir)
}
