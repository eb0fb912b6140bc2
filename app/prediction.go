package app

import (
	"context"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// PredictionQuery mirrors the list endpoint's query parameters.
// Zero values are omitted from the request.
type PredictionQuery struct {
	Page     int
	Limit    int
	Category string
	Status   string
	Sort     string
	Search   string
}

// PredictionService fetches normalized predictions from the API.
type PredictionService interface {
	// FetchPage returns one page of predictions, in API order.
	FetchPage(ctx context.Context, q PredictionQuery) ([]domain.Entity, error)
}

// ExpiryService reports predictions whose deadline passed without a resolution.
type ExpiryService interface {
	ExpiredPending(ctx context.Context) ([]domain.Entity, error)
}
