package quotes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenTransitionsNewToReadOnce(t *testing.T) {
	t.Parallel()

	store := NewStore()
	fresh := store.All()[0]
	require.Equal(t, StatusNew, fresh.Status)

	opened, err := store.Open(fresh.ID)
	require.NoError(t, err)
	require.Equal(t, StatusRead, opened.Status)

	again, err := store.Open(fresh.ID)
	require.NoError(t, err)
	require.Equal(t, StatusRead, again.Status)
}

func TestSetStatusAndDelete(t *testing.T) {
	t.Parallel()

	store := NewStore()
	target := store.All()[1]

	require.NoError(t, store.SetStatus(target.ID, StatusArchived))
	got, err := store.Get(target.ID)
	require.NoError(t, err)
	require.Equal(t, StatusArchived, got.Status)

	require.Error(t, store.SetStatus(target.ID, Status("bogus")))

	require.NoError(t, store.Delete(target.ID))
	_, err = store.Get(target.ID)
	require.ErrorIs(t, err, ErrQuoteNotFound)
	require.ErrorIs(t, store.Delete(target.ID), ErrQuoteNotFound)
}

func TestCountsPartitionTheList(t *testing.T) {
	t.Parallel()

	items := []Quote{
		{ID: "1", Status: StatusNew},
		{ID: "2", Status: StatusNew},
		{ID: "3", Status: StatusRead},
		{ID: "4", Status: StatusReplied},
		{ID: "5", Status: StatusArchived},
	}
	counts := CountByStatus(items)
	require.Equal(t, 5, counts.All)
	require.Equal(t, 2, counts.ByStatus[StatusNew])

	sum := 0
	for _, n := range counts.ByStatus {
		sum += n
	}
	require.Equal(t, counts.All, sum)

	read := Filter(items, Query{Status: "read"})
	require.Len(t, read, 1)
	require.Equal(t, "3", read[0].ID)
}

func TestFilterBySearch(t *testing.T) {
	t.Parallel()

	store := NewStore()
	matches := Filter(store.All(), Query{Search: "vidéo"})
	require.Len(t, matches, 1)
	require.Equal(t, "Vidéosurveillance", matches[0].Service)
}
