package joboffers

import (
	"context"
	"errors"
	"strings"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// ErrOfferNotFound is returned when an offer id does not exist.
var ErrOfferNotFound = errors.New("job offer not found")

// Service exposes recruitment-offer management. Job offers are the one
// admin resource with full backend persistence.
type Service interface {
	// List returns every offer, active or not.
	List(ctx context.Context, token string) ([]backend.JobOffer, error)
	// Get returns one offer by id.
	Get(ctx context.Context, token string, id int64) (*backend.JobOffer, error)
	// Create persists a new offer.
	Create(ctx context.Context, token string, input backend.JobOfferInput) (*backend.JobOffer, error)
	// Update saves changes to an existing offer.
	Update(ctx context.Context, token string, id int64, input backend.JobOfferInput) (*backend.JobOffer, error)
	// Delete removes an offer.
	Delete(ctx context.Context, token string, id int64) error
}

// Query captures the list filter controls.
type Query struct {
	// Activity is "all", "active" or "inactive".
	Activity string
	// Search is a case-insensitive substring match over title and location.
	Search string
}

// Counts reports the activity buckets over the full list.
type Counts struct {
	All      int
	Active   int
	Inactive int
}

// Filter applies q to offers, preserving order.
func Filter(offers []backend.JobOffer, q Query) []backend.JobOffer {
	activity := strings.TrimSpace(q.Activity)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]backend.JobOffer, 0, len(offers))
	for _, offer := range offers {
		switch activity {
		case "active":
			if !offer.IsActive {
				continue
			}
		case "inactive":
			if offer.IsActive {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(offer.Title), search) &&
			!strings.Contains(strings.ToLower(offer.Location), search) {
			continue
		}
		out = append(out, offer)
	}
	return out
}

// CountByActivity computes the bucket counts over the full list.
func CountByActivity(offers []backend.JobOffer) Counts {
	counts := Counts{All: len(offers)}
	for _, offer := range offers {
		if offer.IsActive {
			counts.Active++
		} else {
			counts.Inactive++
		}
	}
	return counts
}
