package backend

import "time"

// Service is a security service offered on the marketing site.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Product is a catalogue entry on the products page.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Training is a training module offered to clients.
type Training struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

// NewsItem is a published news article.
type NewsItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// JobOffer is a recruitment offer. Profiles and Conditions hold an HTML
// unordered list built from freeform text; see internal/listfmt.
type JobOffer struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Profiles    string    `json:"profiles"`
	Conditions  string    `json:"conditions"`
	Location    string    `json:"location"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobOfferInput is the create/update payload, the JobOffer entity minus
// server-managed fields.
type JobOfferInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Profiles    string `json:"profiles"`
	Conditions  string `json:"conditions"`
	Location    string `json:"location"`
	IsActive    bool   `json:"is_active"`
}

// ContactMessage is a submitted contact or job-application message.
type ContactMessage struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	HasAttachment bool      `json:"has_attachment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Admin is the authenticated back-office user.
type Admin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileUpdate carries profile changes; password fields are optional and
// only sent when a new password is requested.
type ProfileUpdate struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// Attachment is a downloaded binary file associated with a message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}
