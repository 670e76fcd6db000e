package resizer

import (
	"image"

	"github.com/nfnt/resize"

	cimg "github.com/go-imsto/imbench/image"
)

const nfntName = "Nfnt"

type nfntResizer struct {
	interp resize.InterpolationFunction
}

func init() {
	Register(nfntName, func() Resizer {
		return &nfntResizer{interp: resize.Bicubic}
	})
}

func (r *nfntResizer) Name() string {
	return nfntName
}

func (r *nfntResizer) Scale(m image.Image, width, height int) (image.Image, error) {
	return resize.Resize(uint(width), uint(height), m, r.interp), nil
}

func (r *nfntResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	return scaleSave(r, src, dst, topt)
}
