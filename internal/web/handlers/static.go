package handlers

import (
	"context"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// StaticGateway is an in-memory Gateway with representative fixtures, used
// by tests and local development without a running backend.
type StaticGateway struct {
	ServicesData  []backend.Service
	ProductsData  []backend.Product
	TrainingsData []backend.Training
	NewsData      []backend.NewsItem
	JobsData      []backend.JobOffer

	Contacts    []backend.ContactRequest
	Subscribers []string

	// Err, when set, is returned by every method.
	Err error
}

// NewStaticGateway seeds a gateway with demo content.
func NewStaticGateway() *StaticGateway {
	return &StaticGateway{
		ServicesData: []backend.Service{
			{ID: 1, Title: "Gardiennage", Slug: "gardiennage", Description: "Agents de sécurité qualifiés pour vos sites."},
			{ID: 2, Title: "Surveillance électronique", Slug: "surveillance-electronique", Description: "Vidéosurveillance et alarmes connectées."},
			{ID: 3, Title: "Télésurveillance", Slug: "telesurveillance", Description: "Supervision à distance 24h/24."},
		},
		ProductsData: []backend.Product{
			{ID: 1, Name: "Caméra dôme HD", Slug: "camera-dome-hd", Description: "Caméra intérieure motorisée.", Category: "technologie"},
			{ID: 2, Name: "Portique de détection", Slug: "portique-detection", Description: "Contrôle d'accès pour sites sensibles.", Category: "equipement"},
		},
		TrainingsData: []backend.Training{
			{ID: 1, Title: "Agent de prévention et de sécurité", Slug: "aps", Description: "Formation initiale certifiante.", Duration: "140h"},
		},
		NewsData: []backend.NewsItem{
			{ID: 1, Title: "Ouverture de notre nouvelle agence", Slug: "nouvelle-agence", Excerpt: "AISSIA Security s'agrandit.", Body: "<p>AISSIA Security ouvre une nouvelle agence.</p>", PublishedAt: time.Date(2025, 10, 12, 9, 0, 0, 0, time.UTC)},
		},
		JobsData: []backend.JobOffer{
			{
				ID: 1, Title: "Agent de sécurité", Slug: "agent-de-securite",
				Description: "<p>Surveillance de sites industriels.</p>",
				Profiles:    "<ul><li>Carte professionnelle à jour</li><li>2 ans d'expérience</li></ul>",
				Conditions:  "<ul><li>CDI temps plein</li><li>Travail de nuit possible</li></ul>",
				Location:    "Cotonou", IsActive: true,
			},
			{ID: 2, Title: "Opérateur vidéo", Slug: "operateur-video", Description: "<p>Poste pourvu.</p>", Location: "Porto-Novo", IsActive: false},
		},
	}
}

func (s *StaticGateway) Services(context.Context) ([]backend.Service, error) {
	return s.ServicesData, s.Err
}

func (s *StaticGateway) Products(context.Context) ([]backend.Product, error) {
	return s.ProductsData, s.Err
}

func (s *StaticGateway) Trainings(context.Context) ([]backend.Training, error) {
	return s.TrainingsData, s.Err
}

func (s *StaticGateway) News(context.Context) ([]backend.NewsItem, error) {
	return s.NewsData, s.Err
}

func (s *StaticGateway) NewsItem(_ context.Context, id int64) (*backend.NewsItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.NewsData {
		if s.NewsData[i].ID == id {
			item := s.NewsData[i]
			return &item, nil
		}
	}
	return nil, &backend.APIError{Status: 404, Message: "article introuvable"}
}

func (s *StaticGateway) Jobs(context.Context) ([]backend.JobOffer, error) {
	return s.JobsData, s.Err
}

func (s *StaticGateway) SubmitContact(_ context.Context, payload backend.ContactRequest) error {
	if s.Err != nil {
		return s.Err
	}
	s.Contacts = append(s.Contacts, payload)
	return nil
}

func (s *StaticGateway) SubscribeNewsletter(_ context.Context, email string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Subscribers = append(s.Subscribers, email)
	return nil
}
