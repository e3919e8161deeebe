package news

// FilterByDate returns the items whose publication time falls inside the
// range. Items without a parseable timestamp are dropped, not errored.
// The relative order of retained items is preserved.
func FilterByDate(items []Item, r DateRange) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if !item.HasDate() {
			continue
		}
		if r.Contains(item.Date) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
