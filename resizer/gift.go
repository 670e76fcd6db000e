package resizer

import (
	"image"

	"github.com/disintegration/gift"

	cimg "github.com/go-imsto/imbench/image"
)

const giftName = "Gift"

type giftResizer struct {
	resampling gift.Resampling
}

func init() {
	Register(giftName, func() Resizer {
		return &giftResizer{resampling: gift.LanczosResampling}
	})
}

func (r *giftResizer) Name() string {
	return giftName
}

func (r *giftResizer) Scale(m image.Image, width, height int) (image.Image, error) {
	g := gift.New(gift.Resize(width, height, r.resampling))
	dst := image.NewRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst, nil
}

func (r *giftResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	return scaleSave(r, src, dst, topt)
}
