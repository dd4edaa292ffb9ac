package ports

import (
	"context"

	"github.com/bnema/cc-quota/internal/domain"
)

// CredentialSource returns a raw credentials payload from one backend.
type CredentialSource interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
}

// CredentialResolver resolves usable credentials. ok is false when no source
// yields an unexpired access token.
type CredentialResolver interface {
	Resolve(ctx context.Context) (creds domain.Credentials, ok bool)
}
