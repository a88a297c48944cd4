// Package quotes manages quote requests on the admin screen. Quote records
// are demo data held in memory only; the backend has no quote endpoints
// yet, so nothing here survives a restart.
package quotes

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrQuoteNotFound is returned when a quote id does not exist.
var ErrQuoteNotFound = errors.New("quote not found")

// Status is the processing state of a quote request.
type Status string

const (
	// StatusNew marks an unseen quote request.
	StatusNew Status = "new"
	// StatusRead marks an opened quote request.
	StatusRead Status = "read"
	// StatusReplied marks an answered quote request.
	StatusReplied Status = "replied"
	// StatusArchived marks a filed quote request.
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

// Quote is a quote request record.
type Quote struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
	Date    time.Time
	Status  Status
}

// Query captures the list filter controls.
type Query struct {
	Status string
	Search string
}

// Counts reports the status buckets over the full list.
type Counts struct {
	All      int
	ByStatus map[Status]int
}

// Store holds the in-memory quote list.
type Store struct {
	mu     sync.Mutex
	quotes []Quote
}

// NewStore seeds a Store with representative demo quotes.
func NewStore() *Store {
	base := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.UTC)
	return &Store{
		quotes: []Quote{
			{
				ID:      uuid.NewString(),
				Name:    "Hôtel du Lac",
				Email:   "direction@hoteldulac.example",
				Phone:   "+229 21 00 00 00",
				Company: "Hôtel du Lac",
				Service: "Gardiennage",
				Message: "Devis pour la sécurisation de l'hôtel, 3 agents en rotation.",
				Date:    base,
				Status:  StatusNew,
			},
			{
				ID:      uuid.NewString(),
				Name:    "Marc Ahouansou",
				Email:   "m.ahouansou@example.com",
				Service: "Vidéosurveillance",
				Message: "Installation de caméras pour un entrepôt de 2000 m².",
				Date:    base.Add(20 * time.Hour),
				Status:  StatusRead,
			},
		},
	}
}

// All returns the full quote list.
func (s *Store) All() []Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Quote(nil), s.quotes...)
}

// Get returns one quote by id.
func (s *Store) Get(id string) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return Quote{}, ErrQuoteNotFound
}

// Open returns the quote, transitioning new to read the first time.
func (s *Store) Open(id string) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes {
		if s.quotes[i].ID != id {
			continue
		}
		if s.quotes[i].Status == StatusNew {
			s.quotes[i].Status = StatusRead
		}
		return s.quotes[i], nil
	}
	return Quote{}, ErrQuoteNotFound
}

// SetStatus updates a quote's status. Any status is reachable from any
// other.
func (s *Store) SetStatus(id string, status Status) error {
	if !status.Valid() {
		return ErrQuoteNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes[i].Status = status
			return nil
		}
	}
	return ErrQuoteNotFound
}

// Delete removes a quote from the list.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.quotes[:0:0]
	found := false
	for _, q := range s.quotes {
		if q.ID == id {
			found = true
			continue
		}
		out = append(out, q)
	}
	if !found {
		return ErrQuoteNotFound
	}
	s.quotes = out
	return nil
}

// Filter applies q to quotes, preserving order.
func Filter(items []Quote, q Query) []Quote {
	status := strings.TrimSpace(q.Status)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Quote, 0, len(items))
	for _, quote := range items {
		if status != "" && status != "all" && string(quote.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(quote.Name), search) &&
			!strings.Contains(strings.ToLower(quote.Service), search) {
			continue
		}
		out = append(out, quote)
	}
	return out
}

// CountByStatus computes the bucket counts over the full list.
func CountByStatus(items []Quote) Counts {
	counts := Counts{
		All:      len(items),
		ByStatus: make(map[Status]int, 4),
	}
	for _, s := range Statuses() {
		counts.ByStatus[s] = 0
	}
	for _, q := range items {
		counts.ByStatus[q.Status]++
	}
	return counts
}
