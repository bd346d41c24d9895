package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/preview"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port   int
		host   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start the live preview server.

Every browser tab gets its own gallery. Widget events travel over a
websocket and the server answers with the re-rendered gallery.

Routes:
  /         gallery page
  /ws       event socket
  /metrics  Prometheus metrics
  /healthz  liveness probe

Examples:
  vangoui serve
  vangoui serve --port=8080
  vangoui serve --config=vangoui.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if pretty {
				cfg.Preview.Pretty = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger(cfg)
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := preview.NewServer(cfg, preview.WithLogger(log))
			success(cmd.OutOrStdout(), "Preview at %s", cfg.PreviewURL())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the rendered HTML")

	return cmd
}
