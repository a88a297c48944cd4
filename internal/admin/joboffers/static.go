package joboffers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// StaticService is an in-memory Service used in tests and local
// development. DeleteErr and SaveErr inject failures.
type StaticService struct {
	mu     sync.Mutex
	offers []backend.JobOffer
	nextID int64

	DeleteErr error
	SaveErr   error
}

// NewStaticService seeds a StaticService with representative offers.
func NewStaticService() *StaticService {
	created := time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC)
	return &StaticService{
		nextID: 3,
		offers: []backend.JobOffer{
			{
				ID:          1,
				Title:       "Agent de sécurité",
				Slug:        "agent-de-securite",
				Description: "Surveillance de sites industriels et contrôle des accès.",
				Profiles:    "<ul><li>Expérience de 2 ans minimum</li><li>Permis de conduire</li></ul>",
				Conditions:  "<ul><li>CDI</li><li>Travail de nuit possible</li></ul>",
				Location:    "Cotonou",
				IsActive:    true,
				CreatedAt:   created,
				UpdatedAt:   created,
			},
			{
				ID:          2,
				Title:       "Superviseur vidéosurveillance",
				Slug:        "superviseur-videosurveillance",
				Description: "Pilotage du centre de supervision et des rondes.",
				Profiles:    "<ul><li>Maîtrise des outils VMS</li></ul>",
				Conditions:  "<ul><li>CDD 12 mois</li></ul>",
				Location:    "Porto-Novo",
				IsActive:    false,
				CreatedAt:   created.Add(72 * time.Hour),
				UpdatedAt:   created.Add(96 * time.Hour),
			},
		},
	}
}

// List implements Service.
func (s *StaticService) List(ctx context.Context, token string) ([]backend.JobOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.JobOffer(nil), s.offers...), nil
}

// Get implements Service.
func (s *StaticService) Get(ctx context.Context, token string, id int64) (*backend.JobOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.offers {
		if s.offers[i].ID == id {
			offer := s.offers[i]
			return &offer, nil
		}
	}
	return nil, ErrOfferNotFound
}

// Create implements Service.
func (s *StaticService) Create(ctx context.Context, token string, input backend.JobOfferInput) (*backend.JobOffer, error) {
	if s.SaveErr != nil {
		return nil, s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now().UTC()
	offer := backend.JobOffer{
		ID:          s.nextID,
		Title:       input.Title,
		Slug:        slugify(input.Title),
		Description: input.Description,
		Profiles:    input.Profiles,
		Conditions:  input.Conditions,
		Location:    input.Location,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.offers = append(s.offers, offer)
	return &offer, nil
}

// Update implements Service.
func (s *StaticService) Update(ctx context.Context, token string, id int64, input backend.JobOfferInput) (*backend.JobOffer, error) {
	if s.SaveErr != nil {
		return nil, s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.offers {
		if s.offers[i].ID != id {
			continue
		}
		s.offers[i].Title = input.Title
		s.offers[i].Description = input.Description
		s.offers[i].Profiles = input.Profiles
		s.offers[i].Conditions = input.Conditions
		s.offers[i].Location = input.Location
		s.offers[i].IsActive = input.IsActive
		s.offers[i].UpdatedAt = time.Now().UTC()
		offer := s.offers[i]
		return &offer, nil
	}
	return nil, ErrOfferNotFound
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.offers[:0:0]
	for _, offer := range s.offers {
		if offer.ID != id {
			out = append(out, offer)
		}
	}
	s.offers = out
	return nil
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	return strings.Trim(slug, "-")
}
