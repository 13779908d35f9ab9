// Package scryfall keeps the local copy of Scryfall data: the bulk card
// file the catalog is loaded from, and the card images the compositor needs.
// Images are downloaded on first request and served from disk afterwards.
package scryfall
