package messages

import (
	"context"
	"sync"

	"github.com/Hec8/aissia-security-sub000/internal/admin/optimistic"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// Board holds the in-memory message list for the admin screen: the fetched
// records, the session-local status overlay, and the optimistic-mutation
// bookkeeping. A single Board is shared across requests, so every method
// takes the lock.
type Board struct {
	svc Service

	mu      sync.Mutex
	items   []backend.ContactMessage
	overlay map[int64]Status
	loaded  bool

	// loadGen discards stale list responses: only the most recently
	// started Load is allowed to replace the items.
	loadGen uint64
}

// NewBoard constructs a Board over svc.
func NewBoard(svc Service) *Board {
	return &Board{
		svc:     svc,
		overlay: make(map[int64]Status),
	}
}

// Load fetches the full message list. Overlapping loads are permitted; a
// response that lost the race is dropped so the most recent fetch wins.
func (b *Board) Load(ctx context.Context, token string) error {
	b.mu.Lock()
	b.loadGen++
	gen := b.loadGen
	b.mu.Unlock()

	items, err := b.svc.List(ctx, token)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.loadGen {
		return nil
	}
	b.items = items
	b.loaded = true
	b.pruneOverlay()
	return nil
}

// Loaded reports whether a list fetch has completed at least once.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// Messages returns the full list with derived statuses applied.
func (b *Board) Messages() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.derivedLocked()
}

// Get returns one message by id.
func (b *Board) Get(id int64) (Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.derivedLocked() {
		if m.ID == id {
			return m, nil
		}
	}
	return Message{}, ErrMessageNotFound
}

// Open returns the message and transitions it from new to read the first
// time it is viewed. Repeat opens and non-new statuses are untouched.
func (b *Board) Open(id int64) (Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item.ID != id {
			continue
		}
		if b.statusLocked(item) == StatusNew {
			b.items[i].IsRead = true
			b.overlay[id] = StatusRead
		}
		return Message{ContactMessage: b.items[i], Status: b.statusLocked(b.items[i])}, nil
	}
	return Message{}, ErrMessageNotFound
}

// SetStatus records a session-local status change. No workflow validation
// is applied; any status is reachable from any other.
func (b *Board) SetStatus(id int64, status Status) error {
	if !status.Valid() {
		return ErrMessageNotFound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item.ID != id {
			continue
		}
		if status != StatusNew {
			b.items[i].IsRead = true
		}
		b.overlay[id] = status
		return nil
	}
	return ErrMessageNotFound
}

// Delete removes the message locally first and restores the previous list
// when the backend call fails.
func (b *Board) Delete(ctx context.Context, token string, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	for _, item := range b.items {
		if item.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrMessageNotFound
	}

	return optimistic.Apply(&b.items, func(items []backend.ContactMessage) []backend.ContactMessage {
		out := items[:0:0]
		for _, item := range items {
			if item.ID != id {
				out = append(out, item)
			}
		}
		return out
	}, func() error {
		return b.svc.Delete(ctx, token, id)
	})
}

// Attachment downloads the attachment for a message through the service.
func (b *Board) Attachment(ctx context.Context, token string, id int64, fallbackName string) (*backend.Attachment, error) {
	return b.svc.Attachment(ctx, token, id, fallbackName)
}

func (b *Board) derivedLocked() []Message {
	out := make([]Message, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, Message{ContactMessage: item, Status: b.statusLocked(item)})
	}
	return out
}

// statusLocked derives the display status: the session overlay wins, then
// the persisted is_read flag.
func (b *Board) statusLocked(item backend.ContactMessage) Status {
	if s, ok := b.overlay[item.ID]; ok {
		return s
	}
	if item.IsRead {
		return StatusRead
	}
	return StatusNew
}

// pruneOverlay drops overlay entries whose message disappeared server-side.
func (b *Board) pruneOverlay() {
	known := make(map[int64]struct{}, len(b.items))
	for _, item := range b.items {
		known[item.ID] = struct{}{}
	}
	for id := range b.overlay {
		if _, ok := known[id]; !ok {
			delete(b.overlay, id)
		}
	}
}
