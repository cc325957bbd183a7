package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/kwsearch/internal/config"
	"github.com/vvka-141/kwsearch/internal/files/workspace"
	"github.com/vvka-141/kwsearch/internal/services"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// loadConfig loads godotenv and the kwsearch configuration, then applies the
// environment override. A missing ./kwsearch.yaml is not an error; a missing
// file named by --config is.
// Callers apply flag overrides and then call finalizeConfig.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if path := getConfigFlag(cmd); path != "" {
		cfg, err = config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s does not exist", kwsearch.ErrInvalidConfig, path)
		}
	} else {
		cfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = &config.Config{}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// finalizeConfig fills defaults and validates the merged configuration.
func finalizeConfig(cfg *config.Config) error {
	cfg.ApplyDefaults()
	return cfg.Validate()
}

// newSearchService wires the workspace provider and search service for cfg.
func newSearchService(cfg *config.Config, logger kwsearch.Logger) (*services.SearchService, error) {
	provider, err := workspace.NewProvider(cfg.WorkspaceRoot, cfg.Limits.MaxFileBytes)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Workspace root: %s", provider.Root())
	logger.Verbose("Limits: max_matches<=%d, context_lines<=%d, default max_matches=%d, max_file_bytes=%d",
		cfg.Limits.MaxMatches, cfg.Limits.MaxContextLines, cfg.Limits.DefaultMaxMatches, cfg.Limits.MaxFileBytes)

	return services.NewSearchService(provider, logger, cfg.SearchLimits(), cfg.Limits.DefaultMaxMatches), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
