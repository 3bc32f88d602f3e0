package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeJPEGReencodesImages(t *testing.T) {
	p := NewProcessor(85)

	out := p.NormalizeJPEG(encodePNG(t, 40, 30))

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestNormalizeJPEGCapsOversizedImages(t *testing.T) {
	p := NewProcessor(85)

	out := p.NormalizeJPEG(encodePNG(t, 3200, 800))

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestNormalizeJPEGPassesThroughNonImages(t *testing.T) {
	p := NewProcessor(85)
	payload := []byte("definitivamente no es una imagen")

	out := p.NormalizeJPEG(payload)

	assert.Equal(t, payload, out)
}

func TestNormalizeJPEGReader(t *testing.T) {
	p := NewProcessor(85)
	payload := encodePNG(t, 10, 10)

	out, err := p.NormalizeJPEGReader(bytes.NewReader(payload))
	require.NoError(t, err)

	_, err = jpeg.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestNewProcessorClampsQuality(t *testing.T) {
	assert.Equal(t, 85, NewProcessor(0).quality)
	assert.Equal(t, 85, NewProcessor(150).quality)
	assert.Equal(t, 60, NewProcessor(60).quality)
}
