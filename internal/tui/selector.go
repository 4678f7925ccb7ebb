package tui

import "github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"

// selectionState is the deterministic core of the friend selector: a cursor
// into the fixed entry list plus the set of selected account ids. It is
// mutated only by the navigation and toggle operations below and carries no
// rendering concerns, so it can be exercised without a terminal.
type selectionState struct {
	cursor   int
	selected map[string]struct{}
}

func newSelectionState() selectionState {
	return selectionState{selected: make(map[string]struct{})}
}

// moveUp and moveDown wrap the cursor modulo the list length and are no-ops
// on an empty list.
func (st *selectionState) moveUp(total int) {
	if total == 0 {
		return
	}
	st.cursor = (st.cursor - 1 + total) % total
}

func (st *selectionState) moveDown(total int) {
	if total == 0 {
		return
	}
	st.cursor = (st.cursor + 1) % total
}

// toggle flips membership of id in the selection. Selection is keyed by
// account id rather than by position, so it would survive a re-sort of the
// entry list.
func (st *selectionState) toggle(id string) {
	if _, ok := st.selected[id]; ok {
		delete(st.selected, id)
		return
	}
	st.selected[id] = struct{}{}
}

// toggleAll selects every entry, or clears the selection when every entry is
// already selected.
func (st *selectionState) toggleAll(entries []models.FriendEntry) {
	if len(st.selected) == len(entries) && len(entries) > 0 {
		st.selected = make(map[string]struct{})
		return
	}
	for _, entry := range entries {
		st.selected[entry.AccountID] = struct{}{}
	}
}

func (st selectionState) isSelected(id string) bool {
	_, ok := st.selected[id]
	return ok
}

// selectedIDs returns the selected account ids in entry-list order.
func (st selectionState) selectedIDs(entries []models.FriendEntry) []string {
	out := make([]string, 0, len(st.selected))
	for _, entry := range entries {
		if st.isSelected(entry.AccountID) {
			out = append(out, entry.AccountID)
		}
	}
	return out
}

// viewportBounds computes the half-open row range [start, end) rendered for
// the given cursor. Lists no longer than the viewport are shown whole;
// otherwise the cursor is centered and the window clamped to the list edges,
// so the cursor is always visible and the window never overruns either end.
func viewportBounds(cursor, total, size int) (start, end int) {
	if size <= 0 || total <= size {
		return 0, total
	}

	start = cursor - size/2
	if start < 0 {
		start = 0
	}
	if start > total-size {
		start = total - size
	}

	return start, start + size
}
