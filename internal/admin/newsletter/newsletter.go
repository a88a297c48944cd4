// Package newsletter manages the subscriber screen. Subscriber records are
// demo data held in memory only; the CSV export works off the in-memory
// list.
package newsletter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSubscriberNotFound is returned when a subscriber id does not exist.
var ErrSubscriberNotFound = errors.New("subscriber not found")

// Status is the subscription state.
type Status string

const (
	// StatusActive marks a current subscriber.
	StatusActive Status = "active"
	// StatusUnsubscribed marks an address that opted out.
	StatusUnsubscribed Status = "unsubscribed"
)

// Subscriber is one newsletter registration.
type Subscriber struct {
	ID           string
	Email        string
	SubscribedAt time.Time
	Status       Status
}

// Counts reports the status buckets over the full list.
type Counts struct {
	All          int
	Active       int
	Unsubscribed int
}

// Store holds the in-memory subscriber list.
type Store struct {
	mu   sync.Mutex
	subs []Subscriber
}

// NewStore seeds a Store with representative demo subscribers.
func NewStore() *Store {
	base := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	return &Store{
		subs: []Subscriber{
			{ID: uuid.NewString(), Email: "claire.dubois@example.com", SubscribedAt: base, Status: StatusActive},
			{ID: uuid.NewString(), Email: "k.mensah@example.com", SubscribedAt: base.Add(10 * 24 * time.Hour), Status: StatusActive},
			{ID: uuid.NewString(), Email: "old.contact@example.com", SubscribedAt: base.Add(-60 * 24 * time.Hour), Status: StatusUnsubscribed},
		},
	}
}

// All returns the full subscriber list.
func (s *Store) All() []Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Subscriber(nil), s.subs...)
}

// SetStatus updates a subscriber's state.
func (s *Store) SetStatus(id string, status Status) error {
	if status != StatusActive && status != StatusUnsubscribed {
		return ErrSubscriberNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subs {
		if s.subs[i].ID == id {
			s.subs[i].Status = status
			return nil
		}
	}
	return ErrSubscriberNotFound
}

// Delete removes a subscriber.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.subs[:0:0]
	found := false
	for _, sub := range s.subs {
		if sub.ID == id {
			found = true
			continue
		}
		out = append(out, sub)
	}
	if !found {
		return ErrSubscriberNotFound
	}
	s.subs = out
	return nil
}

// Filter narrows the list by status ("all" keeps everything) and a
// case-insensitive email substring.
func Filter(items []Subscriber, status, search string) []Subscriber {
	status = strings.TrimSpace(status)
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]Subscriber, 0, len(items))
	for _, sub := range items {
		if status != "" && status != "all" && string(sub.Status) != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(sub.Email), search) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// CountByStatus computes the bucket counts over the full list.
func CountByStatus(items []Subscriber) Counts {
	counts := Counts{All: len(items)}
	for _, sub := range items {
		if sub.Status == StatusActive {
			counts.Active++
		} else {
			counts.Unsubscribed++
		}
	}
	return counts
}

// ExportCSV writes the subscriber list as CSV with a header row.
func ExportCSV(w io.Writer, items []Subscriber) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"email", "subscribed_at", "status"}); err != nil {
		return fmt.Errorf("newsletter: write csv header: %w", err)
	}
	for _, sub := range items {
		record := []string{sub.Email, sub.SubscribedAt.Format(time.RFC3339), string(sub.Status)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("newsletter: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
