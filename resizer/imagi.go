package resizer

import (
	"fmt"
	"strings"

	imagi "github.com/go-imsto/imagi"

	cimg "github.com/go-imsto/imbench/image"
	"github.com/go-imsto/imbench/utils"
)

const imagiName = "Imagi"

// imagiResizer hands the whole file to imagi, which picks its own kernel.
// imagi never enlarges, so a source that already fits is a failure.
type imagiResizer struct{}

func init() {
	Register(imagiName, func() Resizer {
		return &imagiResizer{}
	})
}

func (r *imagiResizer) Name() string {
	return imagiName
}

func (r *imagiResizer) LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	size := topt.GetSize()
	orig, err := cimg.Probe(src)
	if err != nil {
		return nil, err
	}
	if uint(orig.Width) <= size && uint(orig.Height) <= size {
		return nil, fmt.Errorf("%w: imagi does not enlarge %dx%d to fit %dx%d",
			cimg.ErrInvalidSize, orig.Width, orig.Height, size, size)
	}

	iopt := &imagi.ThumbOption{Width: size, Height: size, IsFit: true}
	iopt.Format = strings.TrimPrefix(topt.Ext(), ".")
	iopt.Quality = uint8(topt.GetQuality())

	if err = utils.ReadyDir(dst); err != nil {
		return nil, err
	}
	if err = imagi.ThumbnailFile(src, dst, iopt); err != nil {
		logger().Infow("imagi.ThumbnailFile fail", "src", src, "opt", topt, "err", err)
		return nil, err
	}
	return cimg.Probe(dst)
}
