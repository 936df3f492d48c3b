package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rayyanquantum/rayui/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery locally",
		Long: `Serve renders the gallery: the category index, one page per category with
live block previews, the static pages and a sitemap.

With --watch, edits below the content directory reload the catalog and
refresh every open browser tab.

Examples:
  rayui serve
  rayui serve --port 8080 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root)
		},
	}

	flags := cmd.Flags()
	flags.String("host", "localhost", "address to bind")
	flags.IntP("port", "p", 3000, "port to listen on")
	flags.BoolP("watch", "w", false, "reload the catalog and browsers on content changes")
	_ = root.viper.BindPFlag("server.host", flags.Lookup("host"))
	_ = root.viper.BindPFlag("server.port", flags.Lookup("port"))
	_ = root.viper.BindPFlag("server.watch", flags.Lookup("watch"))

	return cmd
}

func runServe(cmd *cobra.Command, root *rootOptions) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	headerColor.Fprintf(cmd.OutOrStdout(), "🌐 RayUI gallery on http://%s\n", cfg.Server.Addr())
	return srv.Start(ctx)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
