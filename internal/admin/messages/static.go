package messages

import (
	"context"
	"sync"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// StaticService is an in-memory Service used in tests and when the backend
// is not configured. DeleteErr and AttachmentErr inject failures.
type StaticService struct {
	mu    sync.Mutex
	items []backend.ContactMessage

	DeleteErr     error
	AttachmentErr error
	Attachments   map[int64]*backend.Attachment
}

// NewStaticService seeds a StaticService with representative fixtures.
func NewStaticService() *StaticService {
	base := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	return &StaticService{
		items: []backend.ContactMessage{
			{
				ID:        1,
				Name:      "Claire Dubois",
				Email:     "claire.dubois@example.com",
				Subject:   "Demande de devis — gardiennage de site",
				Message:   "Bonjour, nous cherchons une équipe de gardiennage pour un site industriel à Cotonou.",
				CreatedAt: base,
			},
			{
				ID:            2,
				Name:          "Samuel Johnson",
				Email:         "s.johnson@example.com",
				Subject:       "Candidature — Agent de sécurité",
				Message:       "Veuillez trouver ci-joint mon CV et ma lettre de motivation.",
				HasAttachment: true,
				CreatedAt:     base.Add(26 * time.Hour),
			},
			{
				ID:        3,
				Name:      "Awa Teko",
				Email:     "awa.teko@example.com",
				Subject:   "Question sur la vidéosurveillance",
				Message:   "Proposez-vous l'installation de caméras pour des résidences privées ?",
				IsRead:    true,
				CreatedAt: base.Add(48 * time.Hour),
			},
		},
		Attachments: map[int64]*backend.Attachment{
			2: {
				Filename:    "candidature.zip",
				ContentType: "application/zip",
				Content:     []byte("PK\x03\x04"),
			},
		},
	}
}

// List implements Service.
func (s *StaticService) List(ctx context.Context, token string) ([]backend.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.ContactMessage(nil), s.items...), nil
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.items[:0:0]
	for _, item := range s.items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	s.items = out
	return nil
}

// Attachment implements Service.
func (s *StaticService) Attachment(ctx context.Context, token string, id int64, fallbackName string) (*backend.Attachment, error) {
	if s.AttachmentErr != nil {
		return nil, s.AttachmentErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if att, ok := s.Attachments[id]; ok {
		return att, nil
	}
	return nil, ErrMessageNotFound
}
