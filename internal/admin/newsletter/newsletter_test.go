package newsletter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountsPartitionTheList(t *testing.T) {
	t.Parallel()

	store := NewStore()
	counts := CountByStatus(store.All())
	require.Equal(t, 3, counts.All)
	require.Equal(t, 2, counts.Active)
	require.Equal(t, 1, counts.Unsubscribed)
	require.Equal(t, counts.All, counts.Active+counts.Unsubscribed)
}

func TestSetStatusAndDelete(t *testing.T) {
	t.Parallel()

	store := NewStore()
	target := store.All()[0]

	require.NoError(t, store.SetStatus(target.ID, StatusUnsubscribed))
	require.Error(t, store.SetStatus(target.ID, Status("bogus")))
	require.ErrorIs(t, store.SetStatus("missing", StatusActive), ErrSubscriberNotFound)

	require.NoError(t, store.Delete(target.ID))
	require.ErrorIs(t, store.Delete(target.ID), ErrSubscriberNotFound)
	require.Len(t, store.All(), 2)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	store := NewStore()
	active := Filter(store.All(), "active", "")
	require.Len(t, active, 2)

	byEmail := Filter(store.All(), "all", "mensah")
	require.Len(t, byEmail, 1)
	require.Equal(t, "k.mensah@example.com", byEmail[0].Email)
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	subs := []Subscriber{
		{Email: "a@example.com", SubscribedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), Status: StatusActive},
		{Email: "b@example.com", SubscribedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), Status: StatusUnsubscribed},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, subs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"email", "subscribed_at", "status"}, records[0])
	require.Equal(t, []string{"a@example.com", "2026-01-15T10:00:00Z", "active"}, records[1])
	require.Equal(t, []string{"b@example.com", "2026-02-01T09:00:00Z", "unsubscribed"}, records[2])
}
