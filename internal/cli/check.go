package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/icon"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the content tables for duplicate ids and unknown icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			// an unknown icon only leaves an empty slot, so it's a warning
			for _, svc := range content.Services() {
				if _, ok := icon.Lookup(svc.Icon); !ok {
					fmt.Fprintf(out, "warning: service %d (%s) uses unknown icon %q\n", svc.ID, svc.Title, svc.Icon)
				}
			}

			if err := content.ValidateAll(); err != nil {
				return err
			}
			fmt.Fprintf(out, "ok: %d services, %d gallery items, %d testimonials\n",
				len(content.Services()), len(content.Gallery()), len(content.Testimonials()))
			return nil
		},
	}
}
