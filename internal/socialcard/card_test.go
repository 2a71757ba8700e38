package socialcard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender(t *testing.T) {
	for _, size := range []struct{ w, h int }{
		{1200, 630}, // already card-shaped
		{1920, 1080},
		{630, 1200}, // portrait
		{100, 100},  // smaller than the card, upscaled
	} {
		out, err := Render(pngFixture(t, size.w, size.h))
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, CardWidth, img.Bounds().Dx())
		assert.Equal(t, CardHeight, img.Bounds().Dy())
	}
}

func TestRenderRejectsGarbage(t *testing.T) {
	_, err := Render([]byte("<html>not an image</html>"))
	assert.Error(t, err)

	_, err = Render(nil)
	assert.Error(t, err)
}

func TestCenterCrop(t *testing.T) {
	ratio := float64(CardWidth) / float64(CardHeight)

	// Wide image: full height, horizontally centered.
	crop := centerCrop(image.Rect(0, 0, 4000, 1000), ratio)
	assert.Equal(t, 1000, crop.Dy())
	assert.Equal(t, int(1000*ratio), crop.Dx())
	assert.Equal(t, (4000-crop.Dx())/2, crop.Min.X)

	// Tall image: full width, vertically centered.
	crop = centerCrop(image.Rect(0, 0, 1200, 4000), ratio)
	assert.Equal(t, 1200, crop.Dx())
	assert.Equal(t, int(1200/ratio), crop.Dy())
	assert.Equal(t, (4000-crop.Dy())/2, crop.Min.Y)
}
