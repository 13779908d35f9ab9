package cards

import "errors"

var (
	// ErrBadCatalog is returned when the bulk file is not a card array.
	ErrBadCatalog = errors.New("malformed card catalog")

	// ErrEmptyCatalog is returned when the bulk file holds no named cards.
	ErrEmptyCatalog = errors.New("card catalog is empty")
)
