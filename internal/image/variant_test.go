package imagepkg

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("PRINT")
	require.NoError(t, err)
	assert.Equal(t, Print, v)

	_, err = VariantByName("white-lined")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestGeometryShiftsByBase(t *testing.T) {
	assert.Equal(t, image.Pt(2682, 3744), Plain.CanvasSize())
	assert.Equal(t, image.Pt(2982, 4044), Print.CanvasSize())
	assert.Equal(t, image.Pt(1632, 2220), BorderExtension.CanvasSize())

	assert.Equal(t, Plain.ArtBox().Add(image.Pt(150, 150)), Print.ArtBox())
	assert.Equal(t, Plain.ArtBox().Size(), Print.ArtBox().Size())
	assert.Equal(t, Plain.NameAt().Add(image.Pt(150, 150)), Print.NameAt())
	assert.Equal(t, Plain.PTCenter().Add(image.Pt(150, 150)), Print.PTCenter())
}

func TestOracleBoxTallerWithoutLowerBox(t *testing.T) {
	with := Plain.OracleBox(true)
	without := Plain.OracleBox(false)
	assert.Equal(t, with.Min, without.Min)
	assert.Equal(t, noncreatureExtra, without.Dy()-with.Dy())
}
