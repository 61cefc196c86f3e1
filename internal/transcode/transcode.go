package transcode

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/VOLLPilates/assetforge/internal/archive"
	"github.com/VOLLPilates/assetforge/internal/manifest"
	"github.com/VOLLPilates/assetforge/internal/utils"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Process produces a job's derivatives under dir. PNG jobs copy the
// raw bytes verbatim to <name>.png, widths and quality ignored. WebP
// jobs decode once and emit <name>-<width>.webp per requested width.
// Paths of the outputs written so far are returned even on error;
// earlier widths stay on disk when a later one fails.
func Process(dir string, job manifest.Job, blob []byte) ([]string, error) {
	log := utils.GetLogger("transcode")

	if job.Format == manifest.FormatPNG {
		outPath := filepath.Join(dir, job.Name+".png")
		if err := archive.WriteVerbatim(outPath, blob); err != nil {
			return nil, err
		}
		return []string{outPath}, nil
	}

	img, err := Decode(blob)
	if err != nil {
		return nil, err
	}
	img = Normalize(img)
	bounds := img.Bounds()
	log.Debug().Str("name", job.Name).Int("width", bounds.Dx()).Int("height", bounds.Dy()).Msg("Image decoded")

	var outputs []string
	for _, w := range job.Widths {
		outPath := filepath.Join(dir, fmt.Sprintf("%s-%d.webp", job.Name, w))
		encoded, err := EncodeWebP(ResizeToWidth(img, w), job.Quality)
		if err != nil {
			return outputs, &EncodeError{Path: outPath, Err: err}
		}
		if err := archive.WriteVerbatim(outPath, encoded); err != nil {
			return outputs, err
		}
		outputs = append(outputs, outPath)
	}
	return outputs, nil
}

// Decode turns raw bytes into a bitmap. webp, png, jpeg, and gif are
// registered with image.Decode via the blank imports above.
func Decode(blob []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// Normalize passes native RGB/RGBA rasters through untouched and
// clones everything else (paletted, grayscale, CMYK) to NRGBA so
// resizing and encoding see a uniform color model. Alpha survives
// the clone when the source carries it.
func Normalize(img image.Image) image.Image {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.YCbCr:
		return img
	}
	return imaging.Clone(img)
}

// ResizeToWidth scales to the requested width preserving aspect
// ratio, height rounded and floored at one pixel. Returns the bitmap
// unchanged when it already has the requested width.
func ResizeToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width {
		return img
	}
	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// EncodeWebP encodes lossy WebP at the given quality, 3-channel when
// the bitmap is fully opaque and 4-channel when alpha is present. The
// encoder writes pixels only, so upstream EXIF and color profiles
// never reach the derivatives.
func EncodeWebP(img image.Image, quality int) ([]byte, error) {
	if opaque(img) {
		return webp.EncodeRGB(img, float32(quality))
	}
	return webp.EncodeRGBA(img, float32(quality))
}

// opaque reports whether every pixel carries full alpha. Rasters
// without an Opaque method are treated as having alpha.
func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
