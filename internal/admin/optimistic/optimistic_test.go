package optimistic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyKeepsMutationOnSuccess(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	err := Apply(&items, func(in []int) []int {
		return in[:2]
	}, func() error {
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, items)
}

func TestApplyRollsBackOnCommitError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	items := []string{"a", "b", "c"}
	err := Apply(&items, func(in []string) []string {
		return append(in[:1], in[2:]...)
	}, func() error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"a", "b", "c"}, items)
}

func TestApplyCommitSeesMutatedState(t *testing.T) {
	t.Parallel()

	items := []int{1, 2}
	err := Apply(&items, func([]int) []int {
		return nil
	}, func() error {
		require.Empty(t, items)
		return nil
	})
	require.NoError(t, err)
	require.Empty(t, items)
}
