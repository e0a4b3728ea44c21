package models

// Record is implemented by every register entry kept in a collection.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// Insert returns a new collection with rec appended.
func Insert[T Record[T]](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, rec.Clone())
}

// Replace returns a new collection with the record sharing rec's id swapped
// for rec, and whether a record was replaced. Position is preserved.
func Replace[T Record[T]](items []T, rec T) ([]T, bool) {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if out[i].RecordID() == rec.RecordID() {
			out[i] = rec.Clone()
			return out, true
		}
	}
	return out, false
}

// Remove returns a new collection without the record with the given id, and
// whether a record was removed.
func Remove[T Record[T]](items []T, id string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, it := range items {
		if it.RecordID() == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

// Find returns a copy of the record with the given id.
func Find[T Record[T]](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.RecordID() == id {
			return it.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// CloneAll deep-copies a collection.
func CloneAll[T Record[T]](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
