package image

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-imsto/imbench/utils"
)

const (
	MIN_JPEG_QUALITY     = 1
	MAX_JPEG_QUALITY     = 100
	DEFAULT_JPEG_QUALITY = jpeg.DefaultQuality // 75
)

// WriteOption ...
type WriteOption struct {
	Format  string
	Quality Quality
}

// GetQuality returns the quality clamped into the jpeg range, 0 means default
func (wo WriteOption) GetQuality() int {
	q := int(wo.Quality)
	if q == 0 {
		return DEFAULT_JPEG_QUALITY
	}
	if q < MIN_JPEG_QUALITY {
		return MIN_JPEG_QUALITY
	}
	if q > MAX_JPEG_QUALITY {
		return MAX_JPEG_QUALITY
	}
	return q
}

// GetFormat returns the normalized format name, jpeg by default
func (wo WriteOption) GetFormat() string {
	if wo.Format == "" {
		return "jpeg"
	}
	return Ext2Format(wo.Format)
}

// Ext returns the file extension of the output format
func (wo WriteOption) Ext() string {
	return FormatExt(wo.GetFormat())
}

// Open decodes an image file
func Open(filename string) (image.Image, *Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	_, ext, err := GuessType(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}

	m, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	b := m.Bounds()
	attr := NewAttr(uint(b.Dx()), uint(b.Dy()), 0)
	attr.Ext = ext
	attr.Mime = mime.TypeByExtension(ext)
	attr.Name = filename
	if fi, err := f.Stat(); err == nil {
		attr.Size = Size(fi.Size())
	}
	return m, attr, nil
}

// Probe reads only the header of an image file
func Probe(filename string) (*Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, ext, err := GuessType(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	cfg, _, err := image.DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", filename, err)
	}

	attr := NewAttr(uint(cfg.Width), uint(cfg.Height), 0)
	attr.Ext = ext
	attr.Mime = mime.TypeByExtension(ext)
	attr.Name = filename
	if fi, err := f.Stat(); err == nil {
		attr.Size = Size(fi.Size())
	}

	if t == TYPE_JPEG {
		if _, err = f.Seek(0, io.SeekStart); err == nil {
			attr.Orientation = ReadOrientation(f)
		}
	}
	return attr, nil
}

// SaveTo encodes m into w, returns the number of bytes written
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	cw := NewCountWriter(w)
	var err error
	switch opt.GetFormat() {
	case "jpeg":
		err = jpeg.Encode(cw, m, &jpeg.Options{Quality: opt.GetQuality()})
	case "png":
		err = png.Encode(cw, m)
	case "gif":
		err = gif.Encode(cw, m, nil)
	case "webp":
		err = encodeWebp(cw, m, opt.GetQuality())
	default:
		err = ErrorFormat
	}
	if err != nil {
		return cw.Len(), err
	}
	return cw.Len(), nil
}

// SaveFile encodes m into a new file at dest, parent dirs are created
func SaveFile(dest string, m image.Image, opt WriteOption) (int, error) {
	if err := utils.ReadyDir(dest); err != nil {
		return 0, err
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(out)
	n, err := SaveTo(bw, m, opt)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
