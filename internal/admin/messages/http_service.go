package messages

import (
	"context"

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
func (s *HTTPService) List(ctx context.Context, token string) ([]backend.ContactMessage, error) {
	return s.client.ContactMessages(ctx, token)
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.DeleteContactMessage(ctx, token, id)
}

// Attachment implements Service.
func (s *HTTPService) Attachment(ctx context.Context, token string, id int64, fallbackName string) (*backend.Attachment, error) {
	return s.client.MessageAttachment(ctx, token, id, fallbackName)
}
