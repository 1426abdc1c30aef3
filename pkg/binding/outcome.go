package binding

// Outcome is the single-resolution result of one dialog or picker
// interaction: exactly one of a confirmed view value or a cancellation.
// Widgets produce one Outcome per opened interaction and hand it to
// Binding.Resolve once; there is no recurring subscription.
type Outcome[V any] struct {
	value     V
	confirmed bool
}

// Confirmed wraps a view value the user committed.
func Confirmed[V any](value V) Outcome[V] {
	return Outcome[V]{value: value, confirmed: true}
}

// Cancelled represents a dismissed interaction.
func Cancelled[V any]() Outcome[V] {
	return Outcome[V]{}
}

// Value returns the confirmed view value; the second return is false for
// cancelled outcomes.
func (o Outcome[V]) Value() (V, bool) {
	return o.value, o.confirmed
}

// IsCancelled reports whether the interaction was dismissed.
func (o Outcome[V]) IsCancelled() bool {
	return !o.confirmed
}
