package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/preview"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a static gallery snapshot",
		Long: `Render the gallery as a static HTML document.

The snapshot shows every widget in its initial state and carries no
client script.

Examples:
  vangoui render > gallery.html
  vangoui render -o dist/index.html --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if pretty {
				cfg.Preview.Pretty = true
			}
			logger(cfg)

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := preview.WritePage(w, cfg, false); err != nil {
				return err
			}
			if output != "" && output != "-" {
				success(cmd.ErrOrStderr(), "Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the rendered HTML")

	return cmd
}
