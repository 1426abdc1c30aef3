// Package accessor defines the bidirectional mappings between control model
// values and the view values widgets display. The identity accessor covers
// the common case where both coincide; MultiSelectAccessor translates stored
// option values to display labels, and DateRangeAccessor translates interval
// pointers to formatted bound pairs with an empty-range sentinel.
package accessor
