package provider

import (
	"context"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Provider fetches the candidate roster for a company. Implementations must
// return normalized candidates so the engine can trust every field.
type Provider interface {
	FetchRoster(ctx context.Context, companyID string) ([]model.PersonCandidate, error)
}
