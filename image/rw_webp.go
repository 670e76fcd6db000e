//go:build cgo

package image

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

func encodeWebp(w io.Writer, m image.Image, quality int) error {
	return webp.Encode(w, m, &webp.Options{Quality: float32(quality)})
}
