package scryfall

import "errors"

var (
	// ErrNoImage is returned when a card has no image link of the requested kind.
	ErrNoImage = errors.New("card has no image uri")

	// ErrNoBulkEntry is returned when the bulk index lacks the requested file type.
	ErrNoBulkEntry = errors.New("bulk data type not found")
)
