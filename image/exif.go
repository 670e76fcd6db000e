package image

import (
	"io"

	"github.com/seaweedfs/goexif/exif"
)

// ReadOrientation returns the EXIF orientation tag (1-8), 0 if absent
func ReadOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 0
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0
	}
	return v
}
