// Package socialcard renders a fetched preview image into the fixed
// 1200x630 card size social platforms expect.
package socialcard

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// Open Graph card dimensions.
	CardWidth  = 1200
	CardHeight = 630

	jpegQuality = 85
)

// Render decodes the source image, center-crops it to the card aspect ratio
// and scales it to exactly 1200x630 JPEG. Unsupported or corrupt input is an
// error; callers degrade to a card-less page rather than failing the report.
func Render(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode preview image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("empty preview image")
	}

	crop := centerCrop(bounds, float64(CardWidth)/float64(CardHeight))

	dst := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return out.Bytes(), nil
}

// centerCrop returns the largest rectangle of the given aspect ratio that
// fits centered inside bounds.
func centerCrop(bounds image.Rectangle, ratio float64) image.Rectangle {
	w := bounds.Dx()
	h := bounds.Dy()

	cropW := w
	cropH := int(float64(w) / ratio)
	if cropH > h {
		cropH = h
		cropW = int(float64(h) * ratio)
	}

	x0 := bounds.Min.X + (w-cropW)/2
	y0 := bounds.Min.Y + (h-cropH)/2
	return image.Rect(x0, y0, x0+cropW, y0+cropH)
}
