package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phonefixpro/site/internal/render"
)

func renderCmd(configFile *string) *cobra.Command {
	var (
		output string
		year   int
	)

	c := &cobra.Command{
		Use:   "render",
		Short: "Render the home page to a static HTML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, _, _, st, err := setup(cmd.Context(), *configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}

			var buf bytes.Buffer
			if err := render.RenderE(ctx, &buf, st, st.HomePage(year)); err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %q: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "-", "file to write the page to, - for stdout")
	c.Flags().IntVar(&year, "year", 0, "year shown in the footer (default is the current year)")
	return c
}
