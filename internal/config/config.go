package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/cc-quota/internal/adapters/anthropic"
	"github.com/bnema/cc-quota/internal/adapters/cache/jsonfile"
	"github.com/bnema/cc-quota/internal/adapters/secrets/keychain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "CCQUOTA"

	claudeDir   = ".claude"
	statusDir   = "cc-statusline"
	cacheFile   = ".usage-cache.json"
	credentials = ".credentials.json"
)

const (
	KeyCachePath               = "cache.path"
	KeyCacheSuccessTTL         = "cache.success_ttl"
	KeyCacheFailureTTL         = "cache.failure_ttl"
	KeyCredentialsPath         = "credentials.path"
	KeyCredentialsKeychain     = "credentials.keychain_service"
	KeyCredentialsKeychainWait = "credentials.keychain_timeout"
	KeyAPIBaseURL              = "api.base_url"
	KeyAPITimeout              = "api.timeout"
	KeyAPIBeta                 = "api.beta"
)

type Config struct {
	Cache       CacheConfig
	Credentials CredentialsConfig
	API         APIConfig
}

type CacheConfig struct {
	Path       string
	SuccessTTL time.Duration
	FailureTTL time.Duration
}

type CredentialsConfig struct {
	Path            string
	KeychainService string
	KeychainTimeout time.Duration
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	Beta    string
}

// Dir returns the directory holding the optional config file and the cache.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, claudeDir, statusDir)
}

// Load reads ~/.claude/cc-statusline/config.toml when present and applies
// CCQUOTA_* environment overrides on top of the defaults.
func Load(cfg *viper.Viper, homeDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if homeDir == "" {
		return Config{}, errors.New("home directory is empty")
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(Dir(homeDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg, homeDir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		Cache: CacheConfig{
			Path:       expandHome(cfg.GetString(KeyCachePath), homeDir),
			SuccessTTL: cfg.GetDuration(KeyCacheSuccessTTL),
			FailureTTL: cfg.GetDuration(KeyCacheFailureTTL),
		},
		Credentials: CredentialsConfig{
			Path:            expandHome(cfg.GetString(KeyCredentialsPath), homeDir),
			KeychainService: cfg.GetString(KeyCredentialsKeychain),
			KeychainTimeout: cfg.GetDuration(KeyCredentialsKeychainWait),
		},
		API: APIConfig{
			BaseURL: cfg.GetString(KeyAPIBaseURL),
			Timeout: cfg.GetDuration(KeyAPITimeout),
			Beta:    cfg.GetString(KeyAPIBeta),
		},
	}

	if err := loaded.validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper, homeDir string) {
	cfg.SetDefault(KeyCachePath, filepath.Join(Dir(homeDir), cacheFile))
	cfg.SetDefault(KeyCacheSuccessTTL, jsonfile.DefaultSuccessTTL)
	cfg.SetDefault(KeyCacheFailureTTL, jsonfile.DefaultFailureTTL)
	cfg.SetDefault(KeyCredentialsPath, filepath.Join(homeDir, claudeDir, credentials))
	cfg.SetDefault(KeyCredentialsKeychain, keychain.DefaultService)
	cfg.SetDefault(KeyCredentialsKeychainWait, keychain.DefaultTimeout)
	cfg.SetDefault(KeyAPIBaseURL, anthropic.DefaultBaseURL)
	cfg.SetDefault(KeyAPITimeout, anthropic.DefaultTimeout)
	cfg.SetDefault(KeyAPIBeta, anthropic.DefaultBetaHeader)
}

func (c Config) validate() error {
	durations := []struct {
		key   string
		value time.Duration
	}{
		{key: KeyCacheSuccessTTL, value: c.Cache.SuccessTTL},
		{key: KeyCacheFailureTTL, value: c.Cache.FailureTTL},
		{key: KeyCredentialsKeychainWait, value: c.Credentials.KeychainTimeout},
		{key: KeyAPITimeout, value: c.API.Timeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("config %s must be a positive duration, got %s", d.key, d.value)
		}
	}

	if strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("config %s is empty", KeyCachePath)
	}
	if strings.TrimSpace(c.Credentials.Path) == "" {
		return fmt.Errorf("config %s is empty", KeyCredentialsPath)
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("config %s must be an http(s) URL, got %q", KeyAPIBaseURL, c.API.BaseURL)
	}

	return nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
