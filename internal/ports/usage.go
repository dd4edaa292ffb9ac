package ports

import (
	"context"

	"github.com/bnema/cc-quota/internal/domain"
)

type UsageCache interface {
	Read(ctx context.Context) (domain.Snapshot, bool)
	Write(ctx context.Context, snapshot domain.Snapshot)
}

type UsageClient interface {
	Fetch(ctx context.Context, accessToken string) (domain.Report, error)
}
