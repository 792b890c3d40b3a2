package content

// AllCategories is the synthetic filter label that selects every item.
const AllCategories = "All"

// Categories returns "All" followed by the distinct labels of items in
// first-seen order.
func Categories[T any](items []T, label func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{AllCategories}
	for _, item := range items {
		l := label(item)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// FilterBy keeps the items whose label equals selected exactly, preserving
// order. "All" or an empty selection returns items unchanged.
func FilterBy[T any](items []T, selected string, label func(T) string) []T {
	if selected == "" || selected == AllCategories {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if label(item) == selected {
			out = append(out, item)
		}
	}
	return out
}

// Filtered is a filterable listing ready to render.
type Filtered[T any] struct {
	Categories []string `json:"categories"`
	Selected   string   `json:"selected"`
	Items      []T      `json:"items"`
}

// NewFiltered derives the category set from items and applies selected.
func NewFiltered[T any](items []T, selected string, label func(T) string) Filtered[T] {
	if selected == "" {
		selected = AllCategories
	}
	return Filtered[T]{
		Categories: Categories(items, label),
		Selected:   selected,
		Items:      FilterBy(items, selected, label),
	}
}
