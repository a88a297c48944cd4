package joboffers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// HTTPService implements Service through the backend gateway client.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService constructs a Service over the shared gateway client.
func NewHTTPService(client *backend.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List implements Service.
func (s *HTTPService) List(ctx context.Context, token string) ([]backend.JobOffer, error) {
	return s.client.AdminJobOffers(ctx, token)
}

// Get implements Service. The backend has no single-offer admin endpoint,
// so the list is scanned.
func (s *HTTPService) Get(ctx context.Context, token string, id int64) (*backend.JobOffer, error) {
	offers, err := s.client.AdminJobOffers(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i], nil
		}
	}
	return nil, ErrOfferNotFound
}

// Create implements Service.
func (s *HTTPService) Create(ctx context.Context, token string, input backend.JobOfferInput) (*backend.JobOffer, error) {
	return s.client.CreateJobOffer(ctx, token, input)
}

// Update implements Service.
func (s *HTTPService) Update(ctx context.Context, token string, id int64, input backend.JobOfferInput) (*backend.JobOffer, error) {
	offer, err := s.client.UpdateJobOffer(ctx, token, id, input)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.DeleteJobOffer(ctx, token, id)
}
