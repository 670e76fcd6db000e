package resizer

import (
	"image"

	"golang.org/x/image/draw"

	cimg "github.com/go-imsto/imbench/image"
)

const xdrawName = "XDraw"

type xdrawResizer struct {
	interp draw.Interpolator
}

func init() {
	Register(xdrawName, func() Resizer {
		return &xdrawResizer{interp: draw.CatmullRom}
	})
}

func (r *xdrawResizer) Name() string {
	return xdrawName
}

func (r *xdrawResizer) Scale(m image.Image, width, height int) (image.Image, error) {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	r.interp.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst, nil
}

func (r *xdrawResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	return scaleSave(r, src, dst, topt)
}
