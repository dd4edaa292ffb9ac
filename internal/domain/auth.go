package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Credentials is a read-only view of the OAuth token managed by Claude Code.
type Credentials struct {
	AccessToken      string
	SubscriptionType string
}

type credentialsFile struct {
	ClaudeAiOauth *oauthCredentials `json:"claudeAiOauth"`
}

type oauthCredentials struct {
	AccessToken      string   `json:"accessToken"`
	RefreshToken     string   `json:"refreshToken,omitempty"`
	SubscriptionType string   `json:"subscriptionType,omitempty"`
	ExpiresAt        float64  `json:"expiresAt,omitempty"` // epoch milliseconds
	Scopes           []string `json:"scopes,omitempty"`
}

// ParseCredentials decodes a credentials payload and rejects it when the
// access token is missing or expiresAt lies before now. An absent or zero
// expiresAt never expires.
func ParseCredentials(raw []byte, now time.Time) (Credentials, error) {
	var file credentialsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Credentials{}, fmt.Errorf("decode credentials: %w", err)
	}

	oauth := file.ClaudeAiOauth
	if oauth == nil || strings.TrimSpace(oauth.AccessToken) == "" {
		return Credentials{}, ErrMissingAccessToken
	}

	if oauth.ExpiresAt != 0 && oauth.ExpiresAt < float64(now.UnixMilli()) {
		return Credentials{}, ErrCredentialsExpired
	}

	return Credentials{
		AccessToken:      oauth.AccessToken,
		SubscriptionType: oauth.SubscriptionType,
	}, nil
}
