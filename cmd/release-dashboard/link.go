package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilaca/release-dashboard/internal/domain"
	"github.com/vilaca/release-dashboard/internal/prlink"
)

func newLinkCmd() *cobra.Command {
	var (
		provider string
		repoURL  string
		id       string
		inline   bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the HTML fragment for a pull request reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repo := &domain.Repository{
				URL:      repoURL,
				Provider: domain.Provider{ID: provider},
			}
			out, err := prlink.NewRenderer(buildRegistry(cfg)).RenderHTML(id, repo, inline)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "provider id (github, bitbucket, ...)")
	cmd.Flags().StringVar(&repoURL, "url", "", "repository web URL")
	cmd.Flags().StringVar(&id, "id", "", "pull request id")
	cmd.Flags().BoolVar(&inline, "inline", false, "render as an inline text link")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
