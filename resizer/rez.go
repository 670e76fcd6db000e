package resizer

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	cimg "github.com/go-imsto/imbench/image"
)

const rezName = "Rez"

type rezResizer struct {
	filter rez.Filter
}

func init() {
	Register(rezName, func() Resizer {
		return &rezResizer{filter: rez.NewBicubicFilter()}
	})
}

func (r *rezResizer) Name() string {
	return rezName
}

// Scale keeps decoded jpegs in YCbCr, everything else goes through RGBA
func (r *rezResizer) Scale(m image.Image, width, height int) (image.Image, error) {
	rect := image.Rect(0, 0, width, height)
	if ycc, ok := m.(*image.YCbCr); ok && ycc.Rect.Min == (image.Point{}) {
		out := image.NewYCbCr(rect, ycc.SubsampleRatio)
		err := rez.Convert(out, ycc, r.filter)
		if err == nil {
			return out, nil
		}
		logger().Debugw("rez ycbcr convert fail, retry rgba", "ratio", ycc.SubsampleRatio, "err", err)
	}

	out := image.NewRGBA(rect)
	if err := rez.Convert(out, toRGBA(m), r.filter); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rezResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	return scaleSave(r, src, dst, topt)
}

func toRGBA(m image.Image) *image.RGBA {
	if rgba, ok := m.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := m.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), m, b.Min, draw.Src)
	return rgba
}
