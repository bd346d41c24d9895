package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/publish"
)

func publishCmd(flags *globalFlags) *cobra.Command {
	var (
		bucket   string
		key      string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the static snapshot to S3",
		Long: `Render the static gallery and upload it to an S3-compatible bucket.

Credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  vangoui publish --bucket=my-gallery
  vangoui publish --bucket=docs --key=widgets/index.html
  vangoui publish --endpoint=http://localhost:9000 --bucket=local`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if key != "" {
				cfg.Publish.Key = key
			}
			if endpoint != "" {
				cfg.Publish.Endpoint = endpoint
				cfg.Publish.PathStyle = true
			}
			log := logger(cfg)

			body, err := publish.Snapshot(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := publish.Publish(ctx, publish.NewClient(cfg.Publish), cfg.Publish, body, log)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Published %s (%d bytes)", res.Location(), res.Size)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from config)")
	cmd.Flags().StringVar(&key, "key", "", "Object key (default index.html)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint; implies path-style addressing")

	return cmd
}
