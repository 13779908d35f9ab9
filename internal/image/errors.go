package imagepkg

import "errors"

var (
	// ErrValidation rejects a card before any asset or art is touched.
	ErrValidation = errors.New("invalid card")

	// ErrAssetMissing means the template asset tree is incomplete. Every later
	// card would fail the same way, so batch runs stop on it.
	ErrAssetMissing = errors.New("template asset missing")

	// ErrArtUnavailable means the art provider could not supply the card's artwork.
	ErrArtUnavailable = errors.New("card art unavailable")

	// ErrUnknownVariant is returned by VariantByName.
	ErrUnknownVariant = errors.New("unknown template variant")
)
