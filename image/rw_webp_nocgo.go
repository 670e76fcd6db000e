//go:build !cgo

package image

import (
	"image"
	"io"
)

// webp encoding needs cgo
func encodeWebp(w io.Writer, m image.Image, quality int) error {
	return ErrorFormat
}
