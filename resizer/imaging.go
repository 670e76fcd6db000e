package resizer

import (
	"image"

	"github.com/disintegration/imaging"

	cimg "github.com/go-imsto/imbench/image"
	"github.com/go-imsto/imbench/utils"
)

const imagingName = "Imaging"

// imagingResizer uses the library's own open and save as well. EXIF
// orientation is left alone, like every other backend does.
type imagingResizer struct {
	filter imaging.ResampleFilter
}

func init() {
	Register(imagingName, func() Resizer {
		return &imagingResizer{filter: imaging.Lanczos}
	})
}

func (r *imagingResizer) Name() string {
	return imagingName
}

func (r *imagingResizer) Scale(m image.Image, width, height int) (image.Image, error) {
	return imaging.Resize(m, width, height, r.filter), nil
}

func (r *imagingResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	m, err := imaging.Open(src)
	if err != nil {
		return nil, err
	}
	b := m.Bounds()
	w, h, err := topt.Fit(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	out := imaging.Resize(m, w, h, r.filter)

	if _, err = imaging.FormatFromFilename(dst); err != nil {
		// webp and friends, which imaging cannot encode
		n, err := cimg.SaveFile(dst, out, topt.WriteOption)
		if err != nil {
			return nil, err
		}
		return outAttr(dst, w, h, n), nil
	}

	if err = utils.ReadyDir(dst); err != nil {
		return nil, err
	}
	if err = imaging.Save(out, dst, imaging.JPEGQuality(topt.GetQuality())); err != nil {
		return nil, err
	}
	return outAttr(dst, w, h, int(utils.FileSize(dst))), nil
}
