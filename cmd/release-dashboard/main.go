package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilaca/release-dashboard/internal/config"
	"github.com/vilaca/release-dashboard/internal/domain"
	"github.com/vilaca/release-dashboard/internal/prlink"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "release-dashboard",
		Short:        "Track releases and the pull requests that shipped in them",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(), newLinkCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// buildRegistry returns the URL builders enabled by cfg.
func buildRegistry(cfg *config.Config) *prlink.Registry {
	registry := prlink.DefaultRegistry()
	if cfg.Links.BitbucketURLs {
		registry.Register(domain.ProviderBitbucket, prlink.BitbucketURLs)
	}
	return registry
}
