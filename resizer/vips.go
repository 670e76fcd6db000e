//go:build vips

package resizer

import (
	"github.com/h2non/bimg"

	cimg "github.com/go-imsto/imbench/image"
	"github.com/go-imsto/imbench/utils"
)

const vipsName = "Vips"

// vipsResizer needs libvips, build with -tags vips
type vipsResizer struct{}

func init() {
	// the benchmark reloads the same files, keep libvips from caching them
	bimg.VipsCacheSetMax(0)
	bimg.VipsCacheSetMaxMem(0)
	Register(vipsName, func() Resizer {
		return &vipsResizer{}
	})
}

func (r *vipsResizer) Name() string {
	return vipsName
}

func (r *vipsResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	buf, err := bimg.Read(src)
	if err != nil {
		return nil, err
	}
	img := bimg.NewImage(buf)
	size, err := img.Size()
	if err != nil {
		return nil, err
	}
	w, h, err := topt.Fit(size.Width, size.Height)
	if err != nil {
		return nil, err
	}

	out, err := img.Process(bimg.Options{
		Width:         w,
		Height:        h,
		Force:         true,
		Quality:       topt.GetQuality(),
		Type:          vipsType(topt.GetFormat()),
		StripMetadata: true,
		NoAutoRotate:  true,
		Interpolator:  bimg.Bicubic,
	})
	if err != nil {
		return nil, err
	}

	if err = utils.ReadyDir(dst); err != nil {
		return nil, err
	}
	if err = bimg.Write(dst, out); err != nil {
		return nil, err
	}
	return outAttr(dst, w, h, len(out)), nil
}

func vipsType(format string) bimg.ImageType {
	switch format {
	case "png":
		return bimg.PNG
	case "webp":
		return bimg.WEBP
	case "gif":
		return bimg.GIF
	case "tiff":
		return bimg.TIFF
	default:
		return bimg.JPEG
	}
}
