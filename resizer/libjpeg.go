//go:build libjpeg

package resizer

import (
	"bufio"
	"image"
	"io"
	"os"

	libjpeg "github.com/pixiv/go-libjpeg/jpeg"
	"golang.org/x/image/draw"

	cimg "github.com/go-imsto/imbench/image"
	"github.com/go-imsto/imbench/utils"
)

const libjpegName = "LibJPEG"

// libjpegResizer lets libjpeg(-turbo) downscale in the DCT domain while
// decoding, then finishes with CatmullRom. Build with -tags libjpeg.
type libjpegResizer struct{}

func init() {
	Register(libjpegName, func() Resizer {
		return &libjpegResizer{}
	})
}

func (r *libjpegResizer) Name() string {
	return libjpegName
}

func (r *libjpegResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	m, w, h, err := r.load(src, topt)
	if err != nil {
		return nil, err
	}

	if b := m.Bounds(); b.Dx() != w || b.Dy() != h {
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), m, b, draw.Src, nil)
		m = scaled
	}

	if topt.GetFormat() != "jpeg" {
		n, err := cimg.SaveFile(dst, m, topt.WriteOption)
		if err != nil {
			return nil, err
		}
		return outAttr(dst, w, h, n), nil
	}

	if err = utils.ReadyDir(dst); err != nil {
		return nil, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(out)
	cw := cimg.NewCountWriter(bw)
	err = libjpeg.Encode(cw, m, &libjpeg.EncoderOptions{Quality: topt.GetQuality()})
	if err == nil {
		err = bw.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return outAttr(dst, w, h, cw.Len()), nil
}

// load decodes src, prescaled when it is a jpeg, and returns the fitted size
func (r *libjpegResizer) load(src string, topt cimg.ThumbOption) (image.Image, int, int, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	t, _, err := cimg.GuessType(f)
	if err != nil {
		return nil, 0, 0, err
	}
	if t != cimg.TYPE_JPEG {
		m, _, err := image.Decode(bufio.NewReader(f))
		if err != nil {
			return nil, 0, 0, err
		}
		b := m.Bounds()
		w, h, err := topt.Fit(b.Dx(), b.Dy())
		return m, w, h, err
	}

	cfg, err := libjpeg.DecodeConfig(f)
	if err != nil {
		return nil, 0, 0, err
	}
	w, h, err := topt.Fit(cfg.Width, cfg.Height)
	if err != nil {
		return nil, 0, 0, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, 0, 0, err
	}
	m, err := libjpeg.Decode(f, &libjpeg.DecoderOptions{ScaleTarget: image.Rect(0, 0, w, h)})
	if err != nil {
		return nil, 0, 0, err
	}
	return m, w, h, nil
}
