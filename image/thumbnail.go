package image

import (
	"fmt"
	"math"
)

const (
	DefaultThumbSize = 150
)

// ThumbOption bounds a thumbnail into a Size x Size square
type ThumbOption struct {
	Size uint
	WriteOption
}

func (topt ThumbOption) String() string {
	return fmt.Sprintf("%dx%d q%d %s", topt.GetSize(), topt.GetSize(), topt.GetQuality(), topt.GetFormat())
}

// GetSize ...
func (topt ThumbOption) GetSize() uint {
	if topt.Size == 0 {
		return DefaultThumbSize
	}
	return topt.Size
}

// Fit returns the thumbnail dimensions for an ow x oh original
func (topt ThumbOption) Fit(ow, oh int) (int, int, error) {
	w, h := ScaledSize(ow, oh, int(topt.GetSize()))
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, ow, oh)
	}
	return w, h, nil
}

// ScaledSize maps the larger side of inWidth x inHeight to size and scales
// the other one proportionally. Halves round to even, a side never drops to 0.
func ScaledSize(inWidth, inHeight, size int) (width, height int) {
	if inWidth <= 0 || inHeight <= 0 || size <= 0 {
		return 0, 0
	}
	if inWidth > inHeight {
		width = size
		height = int(math.RoundToEven(float64(inHeight) * float64(size) / float64(inWidth)))
	} else {
		width = int(math.RoundToEven(float64(inWidth) * float64(size) / float64(inHeight)))
		height = size
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return
}
