// Package optimistic implements the shared optimistic-update pattern:
// snapshot local state, apply the change immediately, and restore the
// snapshot when the backend call fails.
package optimistic

// Apply mutates *items in place, runs commit, and rolls *items back to the
// pre-mutation snapshot when commit returns an error. The commit error is
// returned unchanged so callers can surface it.
func Apply[T any](items *[]T, mutate func([]T) []T, commit func() error) error {
	snapshot := append([]T(nil), (*items)...)
	*items = mutate(*items)
	if err := commit(); err != nil {
		*items = snapshot
		return err
	}
	return nil
}
