package textlayout

import (
	"image"
	"strings"
	"unicode/utf8"
)

// NewlineWeight is how many characters one line break counts for.
const NewlineWeight = 10

// Tier is one step of the font size table.
type Tier struct {
	// MinLength is the smallest estimated length that selects this tier.
	MinLength    int
	FontSize     int
	YAdjust      int
	LineSpacing  int
	ParagraphGap int
	MaxChars     int
}

// LineHeight is the vertical advance between two lines of a paragraph.
func (t Tier) LineHeight() int {
	return t.FontSize + t.LineSpacing
}

// Tiers is ordered by descending MinLength; the last entry matches everything.
var Tiers = []Tier{
	{MinLength: 440, FontSize: 90, YAdjust: -10, LineSpacing: 8, ParagraphGap: 22, MaxChars: 49},
	{MinLength: 320, FontSize: 100, YAdjust: 0, LineSpacing: 10, ParagraphGap: 26, MaxChars: 44},
	{MinLength: 220, FontSize: 110, YAdjust: 10, LineSpacing: 12, ParagraphGap: 30, MaxChars: 40},
	{MinLength: 120, FontSize: 120, YAdjust: 30, LineSpacing: 14, ParagraphGap: 36, MaxChars: 37},
	{MinLength: 0, FontSize: 130, YAdjust: 60, LineSpacing: 16, ParagraphGap: 40, MaxChars: 34},
}

// Line is one rendered row. Y is the top of the row.
type Line struct {
	Text         string
	X, Y         int
	ParagraphEnd bool
}

// Result is the output of Layout.
type Result struct {
	Tier  Tier
	Lines []Line
}

// Bottom returns the y coordinate just below the last line.
func (r Result) Bottom() int {
	if len(r.Lines) == 0 {
		return 0
	}
	return r.Lines[len(r.Lines)-1].Y + r.Tier.FontSize
}

// Overflows reports whether the laid out text runs past the bottom of box.
func (r Result) Overflows(box image.Rectangle) bool {
	return len(r.Lines) > 0 && r.Bottom() > box.Max.Y
}

// Estimate returns the weighted length used for tier selection.
func Estimate(text string) int {
	n := strings.Count(text, "\n")
	return utf8.RuneCountInString(text) - n + n*NewlineWeight
}

// SelectTier returns the first tier whose MinLength is reached by length.
func SelectTier(length int) Tier {
	for _, t := range Tiers {
		if length >= t.MinLength {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

// Layout places text in box. Explicit line breaks always start a new line,
// and a paragraph break adds the tier's ParagraphGap on top of the normal
// line advance.
func Layout(text string, box image.Rectangle) Result {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	tier := SelectTier(Estimate(text))
	res := Result{Tier: tier}
	if text == "" {
		return res
	}

	y := box.Min.Y + tier.YAdjust
	paragraphs := strings.Split(text, "\n")
	for i, p := range paragraphs {
		for _, l := range Wrap(p, tier.MaxChars) {
			res.Lines = append(res.Lines, Line{Text: l, X: box.Min.X, Y: y})
			y += tier.LineHeight()
		}
		if i < len(paragraphs)-1 {
			res.Lines[len(res.Lines)-1].ParagraphEnd = true
			y += tier.ParagraphGap
		}
	}
	return res
}

// Wrap greedily packs paragraph into lines of at most maxChars runes. A
// break that lands inside a word moves back to the preceding space; a word
// longer than the line is cut at maxChars.
func Wrap(paragraph string, maxChars int) []string {
	r := []rune(paragraph)
	if maxChars <= 0 {
		return []string{paragraph}
	}

	var lines []string
	for len(r) > maxChars {
		cut, next := maxChars, maxChars
		if r[maxChars] == ' ' {
			next = maxChars + 1
		} else if i := lastSpace(r[:maxChars]); i > 0 {
			cut, next = i, i+1
		}
		lines = append(lines, string(r[:cut]))
		r = r[next:]
	}
	return append(lines, string(r))
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}
