package chain

import (
	"context"
	"errors"
	"time"

	filesource "github.com/bnema/cc-quota/internal/adapters/secrets/file"
	keychainsource "github.com/bnema/cc-quota/internal/adapters/secrets/keychain"
	"github.com/bnema/cc-quota/internal/domain"
	"github.com/bnema/cc-quota/internal/ports"
	"github.com/rs/zerolog"
)

// Store resolves credentials from an ordered list of sources. The first
// source yielding an unexpired access token wins. When that source carries no
// subscription tier, the remaining sources are consulted for the tier only.
type Store struct {
	sources []ports.CredentialSource
	clock   ports.Clock
	logger  zerolog.Logger
}

var _ ports.CredentialResolver = (*Store)(nil)

var (
	errNoSources = errors.New("credential chain has no sources")
	errNilSource = errors.New("credential source is nil")
	errNilClock  = errors.New("credential chain clock is nil")
)

func NewStore(clock ports.Clock, logger zerolog.Logger, sources ...ports.CredentialSource) *Store {
	store, err := NewStoreChecked(clock, logger, sources...)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(clock ports.Clock, logger zerolog.Logger, sources ...ports.CredentialSource) (*Store, error) {
	if clock == nil {
		return nil, errNilClock
	}
	if len(sources) == 0 {
		return nil, errNoSources
	}
	for _, source := range sources {
		if source == nil {
			return nil, errNilSource
		}
	}

	return &Store{
		sources: sources,
		clock:   clock,
		logger:  logger.With().Str("component", "credentials").Logger(),
	}, nil
}

func NewKeychainFirstWithFileFallback(keychainService string, keychainTimeout time.Duration, filePath string, clock ports.Clock, logger zerolog.Logger) (*Store, error) {
	return NewStoreChecked(
		clock,
		logger,
		keychainsource.NewSource(keychainService, keychainTimeout),
		filesource.NewSource(filePath),
	)
}

func (s *Store) Resolve(ctx context.Context) (domain.Credentials, bool) {
	for i, source := range s.sources {
		creds, ok := s.load(ctx, source)
		if !ok {
			if shouldSkipFallback(ctx) {
				return domain.Credentials{}, false
			}
			continue
		}

		if creds.SubscriptionType == "" {
			creds.SubscriptionType = s.enrichTier(ctx, s.sources[i+1:])
		}

		return creds, true
	}

	s.logger.Debug().Msg("no usable credentials found")
	return domain.Credentials{}, false
}

func (s *Store) load(ctx context.Context, source ports.CredentialSource) (domain.Credentials, bool) {
	raw, err := source.Read(ctx)
	if err != nil {
		s.logger.Debug().Str("source", source.Name()).Err(err).Msg("credential source unavailable")
		return domain.Credentials{}, false
	}

	creds, err := domain.ParseCredentials(raw, s.clock.Now())
	if err != nil {
		s.logger.Debug().Str("source", source.Name()).Err(err).Msg("credential source rejected")
		return domain.Credentials{}, false
	}

	s.logger.Debug().Str("source", source.Name()).Msg("credentials resolved")
	return creds, true
}

// enrichTier looks for a subscription tier in the sources after the winning
// one. Failures are ignored; they never invalidate the resolved token.
func (s *Store) enrichTier(ctx context.Context, rest []ports.CredentialSource) string {
	for _, source := range rest {
		if shouldSkipFallback(ctx) {
			return ""
		}

		creds, ok := s.load(ctx, source)
		if ok && creds.SubscriptionType != "" {
			return creds.SubscriptionType
		}
	}

	return ""
}

// shouldSkipFallback stops the chain once the caller's context is done. A
// source timing out on its own deadline still falls through.
func shouldSkipFallback(ctx context.Context) bool {
	err := ctx.Err()
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
