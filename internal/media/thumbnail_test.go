package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	out, err := Thumbnail(bytes.NewReader(pngOf(t, 400, 200)))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, ThumbnailSize, ThumbnailSize), img.Bounds())
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	_, err := Thumbnail(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestThumbnailRejectsOversized(t *testing.T) {
	_, err := Thumbnail(bytes.NewReader(make([]byte, MaxUploadBytes+10)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSquareCrop(t *testing.T) {
	assert.Equal(t, image.Rect(100, 0, 300, 200), squareCrop(image.Rect(0, 0, 400, 200)))
	assert.Equal(t, image.Rect(0, 50, 100, 150), squareCrop(image.Rect(0, 0, 100, 200)))
	assert.Equal(t, image.Rect(0, 0, 64, 64), squareCrop(image.Rect(0, 0, 64, 64)))
}
