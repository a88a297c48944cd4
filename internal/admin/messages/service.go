package messages

import (
	"context"
	"errors"
	"strings"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// ErrMessageNotFound is returned when a message id does not exist locally.
var ErrMessageNotFound = errors.New("message not found")

// Service exposes the backend operations behind the messages screen.
type Service interface {
	// List returns every stored contact message.
	List(ctx context.Context, token string) ([]backend.ContactMessage, error)
	// Delete removes a message server-side.
	Delete(ctx context.Context, token string, id int64) error
	// Attachment downloads the binary attachment for a message.
	Attachment(ctx context.Context, token string, id int64, fallbackName string) (*backend.Attachment, error)
}

// Status is the UI classification of a message. Only the read/unread split
// is persisted (is_read); replied and archived live in the session overlay
// and do not survive a restart or another admin's session.
type Status string

const (
	// StatusNew marks an unread message.
	StatusNew Status = "new"
	// StatusRead marks a message that has been opened.
	StatusRead Status = "read"
	// StatusReplied marks a message answered by an admin (session-local).
	StatusReplied Status = "replied"
	// StatusArchived marks a message filed away (session-local).
	StatusArchived Status = "archived"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusNew, StatusRead, StatusReplied, StatusArchived}
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Message pairs a backend record with its derived status.
type Message struct {
	backend.ContactMessage
	Status Status
}

// Query captures the list filter controls. Filtering is a pure function
// over the already-fetched list; it never triggers a network call.
type Query struct {
	// Status narrows to one bucket; empty or "all" keeps everything.
	Status string
	// Search is a case-insensitive substring match over name and subject.
	Search string
}

// Counts reports how many messages fall into each status bucket. All always
// equals the sum of the buckets.
type Counts struct {
	All      int
	ByStatus map[Status]int
}

// Filter applies q to items. The order of the input is preserved.
func Filter(items []Message, q Query) []Message {
	status := strings.TrimSpace(q.Status)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Message, 0, len(items))
	for _, m := range items {
		if status != "" && status != "all" && string(m.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Subject), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// CountByStatus computes the bucket counts over the full, unfiltered list.
func CountByStatus(items []Message) Counts {
	counts := Counts{
		All:      len(items),
		ByStatus: make(map[Status]int, 4),
	}
	for _, s := range Statuses() {
		counts.ByStatus[s] = 0
	}
	for _, m := range items {
		counts.ByStatus[m.Status]++
	}
	return counts
}
