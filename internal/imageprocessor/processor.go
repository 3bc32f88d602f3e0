package imageprocessor

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// Stored images are capped at this edge length.
const maxDimension = 1600

// Processor re-encodes uploaded images as JPEG, since records reference
// their image as <id>.jpg regardless of the upload format.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// NormalizeJPEG decodes the payload, downscales it if oversized and
// encodes it as JPEG. Payloads that don't decode as an image are
// returned untouched; the store path keeps the .jpg name either way,
// exactly like the service this replaced, which renamed files blindly.
func (p *Processor) NormalizeJPEG(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	img = p.capSize(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return data
	}
	return buf.Bytes()
}

// NormalizeJPEGReader is NormalizeJPEG for stream inputs.
func (p *Processor) NormalizeJPEGReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.NormalizeJPEG(data), nil
}

// capSize scales the image down to maxDimension, keeping aspect ratio.
func (p *Processor) capSize(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDimension && height <= maxDimension {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxDimension
	newHeight := maxDimension
	if ratio > 1 {
		newHeight = int(float64(maxDimension) / ratio)
	} else {
		newWidth = int(float64(maxDimension) * ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
