package cards

import "strings"

var slugReplacer = strings.NewReplacer(",", "", "/", "", " ", "-")

// Slug turns a card name into a file name stem:
// "Jace, the Mind Sculptor" -> "jace-the-mind-sculptor".
// Slashes are dropped so split cards stay a single path segment.
func Slug(name string) string {
	s := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// ArtistName is the alternate "Name (Artist)" form used when proxies are
// named for upload to print services that group by artist.
func ArtistName(c Card) string {
	name := strings.ReplaceAll(c.Name, "/", "")
	name = strings.Join(strings.Fields(name), " ")
	if c.Artist == "" {
		return name
	}
	return name + " (" + c.Artist + ")"
}
