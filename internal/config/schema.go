package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// fileSchema mirrors config.toml. Durations are kept as strings ("60s") so
// the dump can be pasted back into the file.
type fileSchema struct {
	Cache       cacheSchema       `toml:"cache"`
	Credentials credentialsSchema `toml:"credentials"`
	API         apiSchema         `toml:"api"`
}

type cacheSchema struct {
	Path       string `toml:"path"`
	SuccessTTL string `toml:"success_ttl"`
	FailureTTL string `toml:"failure_ttl"`
}

type credentialsSchema struct {
	Path            string `toml:"path"`
	KeychainService string `toml:"keychain_service"`
	KeychainTimeout string `toml:"keychain_timeout"`
}

type apiSchema struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
	Beta    string `toml:"beta"`
}

func toSchema(c Config) fileSchema {
	return fileSchema{
		Cache: cacheSchema{
			Path:       c.Cache.Path,
			SuccessTTL: c.Cache.SuccessTTL.String(),
			FailureTTL: c.Cache.FailureTTL.String(),
		},
		Credentials: credentialsSchema{
			Path:            c.Credentials.Path,
			KeychainService: c.Credentials.KeychainService,
			KeychainTimeout: c.Credentials.KeychainTimeout.String(),
		},
		API: apiSchema{
			BaseURL: c.API.BaseURL,
			Timeout: c.API.Timeout.String(),
			Beta:    c.API.Beta,
		},
	}
}

// MarshalTOML encodes the effective configuration in config.toml form.
func (c Config) MarshalTOML() ([]byte, error) {
	data, err := toml.Marshal(toSchema(c))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}
