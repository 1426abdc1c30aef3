package accessor

import "errors"

var (
	// ErrUnknownOption signals a view label that maps to no configured option.
	ErrUnknownOption = errors.New("accessor: unknown option")
	// ErrIncompleteRange signals a range view with only one bound set. An
	// incomplete pair is an unfinished interaction, not a partial value.
	ErrIncompleteRange = errors.New("accessor: incomplete range")
	// ErrInvertedRange signals a range whose end precedes its start.
	ErrInvertedRange = errors.New("accessor: range end precedes start")
)
