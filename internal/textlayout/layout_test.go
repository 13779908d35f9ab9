package textlayout

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var box = image.Rect(380, 2614, 2350, 3350)

func TestEstimateWeightsNewlines(t *testing.T) {
	assert.Equal(t, 7, Estimate("Trample"))
	assert.Equal(t, 3+10+3, Estimate("abc\ndef"))
	assert.Equal(t, 4, Estimate("—abc"))
}

func TestSelectTierShrinksLongText(t *testing.T) {
	short := SelectTier(10)
	long := SelectTier(1000)
	assert.Equal(t, 130, short.FontSize)
	assert.Equal(t, 90, long.FontSize)
	assert.Greater(t, long.MaxChars, short.MaxChars)

	prev := SelectTier(0).FontSize
	for n := 0; n < 600; n += 10 {
		size := SelectTier(n).FontSize
		assert.LessOrEqual(t, size, prev, "length %d", n)
		prev = size
	}
}

func TestNewlinesPushTierDown(t *testing.T) {
	flat := strings.Repeat("x", 119)
	broken := strings.Repeat("x", 59) + "\n" + strings.Repeat("x", 59)
	assert.Equal(t, 130, Layout(flat, box).Tier.FontSize)
	assert.Equal(t, 120, Layout(broken, box).Tier.FontSize)
}

func TestWrapBacktracksToSpace(t *testing.T) {
	lines := Wrap("aaa bbb ccc", 6)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, lines)

	lines = Wrap("aaa bbb", 3)
	assert.Equal(t, []string{"aaa", "bbb"}, lines)
}

func TestWrapHardBreaksLongWords(t *testing.T) {
	assert.Equal(t, []string{"abcde", "fghij", "k"}, Wrap("abcdefghijk", 5))
}

func TestWrapShortAndEmpty(t *testing.T) {
	assert.Equal(t, []string{"Flying"}, Wrap("Flying", 34))
	assert.Equal(t, []string{""}, Wrap("", 34))
}

func TestLayoutNewlineForcesBreak(t *testing.T) {
	res := Layout("Flying\nVigilance", box)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "Flying", res.Lines[0].Text)
	assert.Equal(t, "Vigilance", res.Lines[1].Text)
	assert.True(t, res.Lines[0].ParagraphEnd)
	assert.False(t, res.Lines[1].ParagraphEnd)

	gap := res.Lines[1].Y - res.Lines[0].Y
	assert.Equal(t, res.Tier.LineHeight()+res.Tier.ParagraphGap, gap)
}

func TestLayoutWrappedLinesAdvanceByLineHeight(t *testing.T) {
	text := strings.Repeat("word ", 20)
	res := Layout(text, box)
	require.Greater(t, len(res.Lines), 1)
	for i := 1; i < len(res.Lines); i++ {
		assert.Equal(t, res.Tier.LineHeight(), res.Lines[i].Y-res.Lines[i-1].Y)
		assert.Equal(t, box.Min.X, res.Lines[i].X)
	}
	assert.Equal(t, box.Min.Y+res.Tier.YAdjust, res.Lines[0].Y)
}

func TestLayoutIsIdempotent(t *testing.T) {
	text := "When this creature enters, draw a card.\nWhenever you cast an instant or sorcery spell, scry 1."
	assert.Equal(t, Layout(text, box), Layout(text, box))
}

func TestLayoutEmpty(t *testing.T) {
	res := Layout("", box)
	assert.Empty(t, res.Lines)
	assert.False(t, res.Overflows(box))
}

func TestLayoutAllowsOverflow(t *testing.T) {
	text := strings.Repeat("This ability is far too long to fit. ", 60)
	res := Layout(text, box)
	assert.True(t, res.Overflows(box))
	joined := strings.Join(lineTexts(res), " ")
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(strings.Fields(joined), " "))
}

func lineTexts(r Result) []string {
	out := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l.Text)
	}
	return out
}
