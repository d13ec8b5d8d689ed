package view

import "tableflip.dev/album/pkg/media"

// Reorder moves dragID to targetID's slot within visible and returns the new
// position of every visible item, keyed by id. Positions are the 0-based
// index in the new order. It returns nil when nothing should change: an empty
// or unknown drag id, a drop on itself, or a target that is not visible.
//
// Only visible items are renumbered, so within a filtered view the new values
// can collide with positions held by items outside the view.
func Reorder(visible []media.Item, dragID, targetID string) map[string]int {
	if dragID == "" || dragID == targetID {
		return nil
	}
	from := IndexOf(visible, dragID)
	to := IndexOf(visible, targetID)
	if from < 0 || to < 0 {
		return nil
	}

	order := make([]string, 0, len(visible))
	for _, it := range visible {
		order = append(order, it.ID)
	}
	moved := order[from]
	order = append(order[:from], order[from+1:]...)
	order = append(order[:to], append([]string{moved}, order[to:]...)...)

	positions := make(map[string]int, len(order))
	for i, id := range order {
		positions[id] = i
	}
	return positions
}

// Apply returns a copy of items with positions overridden from positions.
// Items absent from positions keep their value.
func Apply(items []media.Item, positions map[string]int) []media.Item {
	out := make([]media.Item, len(items))
	copy(out, items)
	for i := range out {
		if p, ok := positions[out[i].ID]; ok {
			out[i].Position = p
		}
	}
	return out
}
