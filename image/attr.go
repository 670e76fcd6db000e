package image

import (
	"fmt"
)

type Dimension uint32
type Size uint32
type Quality uint8

// Attr ...
type Attr struct {
	Width       Dimension `json:"width"`
	Height      Dimension `json:"height"`
	Quality     Quality   `json:"quality,omitempty"`
	Size        Size      `json:"size"`
	Ext         string    `json:"ext,omitempty"`
	Mime        string    `json:"mime,omitempty"`
	Name        string    `json:"name,omitempty"`
	Orientation int       `json:"orientation,omitempty"`
}

func (a Attr) String() string {
	return fmt.Sprintf("%dx%d %s %d bytes", a.Width, a.Height, a.Ext, a.Size)
}

// Ratio returns width / height, 0 for an empty attr
func (a Attr) Ratio() float64 {
	if a.Height == 0 {
		return 0
	}
	return float64(a.Width) / float64(a.Height)
}

// export NewAttr
func NewAttr(w, h uint, q uint8) *Attr {
	return &Attr{
		Width:   Dimension(w),
		Height:  Dimension(h),
		Quality: Quality(q),
	}
}
