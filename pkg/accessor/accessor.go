package accessor

// ValueAccessor is a bidirectional mapping between a control's model type M
// and the representation a widget natively displays and emits, V.
//
// Implementations must satisfy the round-trip law: for every valid model
// value m, ViewToModel(ModelToView(m)) yields a value equal to m. Accessors
// that bend this law on part of their domain document it on the concrete
// type.
//
// ViewToModel may fail when a widget emits a value the model cannot hold
// (unknown label, incomplete range). A failed conversion means the
// interaction produced nothing usable; the binding leaves the control
// untouched in that case.
type ValueAccessor[M, V any] interface {
	ModelToView(M) V
	ViewToModel(V) (M, error)
}

type identity[T any] struct{}

func (identity[T]) ModelToView(value T) T { return value }

func (identity[T]) ViewToModel(value T) (T, error) { return value, nil }

// Identity returns the accessor used when model and view types coincide.
func Identity[T any]() ValueAccessor[T, T] {
	return identity[T]{}
}
