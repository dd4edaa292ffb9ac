package application

import (
	"context"

	"github.com/bnema/cc-quota/internal/domain"
	"github.com/bnema/cc-quota/internal/ports"
	"github.com/rs/zerolog"
)

type Service struct {
	cache       ports.UsageCache
	credentials ports.CredentialResolver
	client      ports.UsageClient
	logger      zerolog.Logger
}

func NewService(cache ports.UsageCache, credentials ports.CredentialResolver, client ports.UsageClient, logger zerolog.Logger) *Service {
	return &Service{
		cache:       cache,
		credentials: credentials,
		client:      client,
		logger:      logger.With().Str("component", "usage").Logger(),
	}
}

// GetUsage returns the current snapshot, or nil when no credentials resolve.
//
// A fresh cache entry short-circuits everything else. Otherwise the endpoint
// is called once; a failed call yields a degraded snapshot. Both outcomes are
// cached. The unauthenticated outcome is not, so credentials are looked up
// again on every call until they appear.
func (s *Service) GetUsage(ctx context.Context) *domain.Snapshot {
	if snapshot, ok := s.cache.Read(ctx); ok {
		return &snapshot
	}

	creds, ok := s.credentials.Resolve(ctx)
	if !ok {
		s.logger.Debug().Msg("not authenticated")
		return nil
	}

	plan := domain.PlanFromSubscription(creds.SubscriptionType)

	var snapshot domain.Snapshot
	report, err := s.client.Fetch(ctx, creds.AccessToken)
	if err != nil {
		s.logger.Debug().Err(err).Str("plan", string(plan)).Msg("recording degraded snapshot")
		snapshot = domain.NewDegradedSnapshot(plan)
	} else {
		snapshot = domain.NewReportSnapshot(plan, report)
	}

	s.cache.Write(ctx, snapshot)
	return &snapshot
}
