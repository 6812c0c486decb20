package domain

// Identifiable is implemented by every record embedding Base.
type Identifiable interface {
	Identity() string
}

// FindByID scans items in order and returns the first record with the given
// ID. A miss returns the zero value and false.
func FindByID[T Identifiable](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Identity() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert returns a copy of items in which the record with the given ID has
// been passed through patch. The record keeps its index; items itself is not
// modified. When no record matches, Upsert returns items unchanged and false.
func Upsert[T Identifiable](items []T, id string, patch func(*T)) ([]T, bool) {
	for i, item := range items {
		if item.Identity() != id {
			continue
		}
		out := append([]T(nil), items...)
		patched := item
		patch(&patched)
		out[i] = patched
		return out, true
	}
	return items, false
}

// AppendChild returns a new slice holding list followed by item. The caller's
// backing array is never written to.
func AppendChild[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}
