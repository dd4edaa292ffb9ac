package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bnema/cc-quota/internal/adapters/anthropic"
	"github.com/bnema/cc-quota/internal/adapters/cache/jsonfile"
	"github.com/bnema/cc-quota/internal/adapters/logging"
	"github.com/bnema/cc-quota/internal/adapters/render/statusline"
	chainstore "github.com/bnema/cc-quota/internal/adapters/secrets/chain"
	"github.com/bnema/cc-quota/internal/application"
	"github.com/bnema/cc-quota/internal/config"
	"github.com/bnema/cc-quota/internal/domain"
	"github.com/bnema/cc-quota/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	config   config.Config
	service  *application.Service
	cache    *jsonfile.Cache
	renderer func(*domain.Snapshot, statusline.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, os.Getenv)
	clock := ports.SystemClock{}

	credentials, err := chainstore.NewKeychainFirstWithFileFallback(
		cfg.Credentials.KeychainService,
		cfg.Credentials.KeychainTimeout,
		cfg.Credentials.Path,
		clock,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("wire credential chain: %w", err)
	}

	cache := jsonfile.NewCache(cfg.Cache.Path, cfg.Cache.SuccessTTL, cfg.Cache.FailureTTL, clock, logger)
	client := anthropic.NewClient(cfg.API.BaseURL, cfg.API.Beta, cfg.API.Timeout, http.DefaultClient, logger)

	return &app{
		config:   cfg,
		service:  application.NewService(cache, credentials, client, logger),
		cache:    cache,
		renderer: statusline.Render,
	}, nil
}
