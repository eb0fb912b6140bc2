package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/domain"
)

// expiredLimit bounds one expiry check.
const expiredLimit = 50

// predictionService implements app.PredictionService and app.ExpiryService.
type predictionService struct {
	client *Client
	selfID string // Marks the user's own predictions
}

// NewPredictionService creates a PredictionService backed by the API.
func NewPredictionService(client *Client, selfID string) *predictionService {
	return &predictionService{client: client, selfID: selfID}
}

func (s *predictionService) FetchPage(ctx context.Context, q app.PredictionQuery) ([]domain.Entity, error) {
	data, err := s.client.Get(ctx, "/predictions"+encodeQuery(q))
	if err != nil {
		return nil, fmt.Errorf("fetching predictions: %w", err)
	}
	records, err := decodeList(data, "data", "predictions")
	if err != nil {
		return nil, fmt.Errorf("parsing predictions: %w", err)
	}
	return mapPredictions(records, s.selfID), nil
}

func (s *predictionService) ExpiredPending(ctx context.Context) ([]domain.Entity, error) {
	path := fmt.Sprintf("/predictions/expired?limit=%d", expiredLimit)
	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching expired predictions: %w", err)
	}
	records, err := decodeList(data, "data", "predictions")
	if err != nil {
		return nil, fmt.Errorf("parsing expired predictions: %w", err)
	}
	entities := mapPredictions(records, s.selfID)
	pending := entities[:0]
	for _, e := range entities {
		if e.Resolution.State == domain.ResolutionPending {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

func encodeQuery(q app.PredictionQuery) string {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
