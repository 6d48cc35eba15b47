package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phonefixpro/site/internal/content"
)

type contentDump struct {
	Services     []content.Service     `yaml:"services"`
	Gallery      []content.GalleryItem `yaml:"gallery"`
	Testimonials []content.Testimonial `yaml:"testimonials"`
}

func contentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the content tables as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			err := enc.Encode(contentDump{
				Services:     content.Services(),
				Gallery:      content.Gallery(),
				Testimonials: content.Testimonials(),
			})
			if err != nil {
				return fmt.Errorf("encode content: %w", err)
			}
			return enc.Close()
		},
	}
}
