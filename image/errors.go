package image

import (
	"errors"
)

var (
	ErrorFormat    = errors.New("Invalid or unsupported Image Format")
	ErrInvalidSize = errors.New("Invalid Image Size")
)
