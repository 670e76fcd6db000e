package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) image.Image {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 128, 255})
		}
	}
	return m
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	m := gradient(120, 80)

	for _, format := range []string{"jpeg", "png", "gif"} {
		opt := WriteOption{Format: format, Quality: 75}
		dest := filepath.Join(dir, "sub", "out"+opt.Ext())
		n, err := SaveFile(dest, m, opt)
		require.NoError(t, err, format)
		assert.NotZero(t, n)

		fi, err := os.Stat(dest)
		require.NoError(t, err)
		assert.Equal(t, int64(n), fi.Size(), format)

		im, attr, err := Open(dest)
		require.NoError(t, err, format)
		assert.Equal(t, 120, im.Bounds().Dx())
		assert.Equal(t, Dimension(120), attr.Width)
		assert.Equal(t, Dimension(80), attr.Height)
		assert.Equal(t, Size(n), attr.Size)
		assert.Equal(t, opt.Ext(), attr.Ext)

		pa, err := Probe(dest)
		require.NoError(t, err)
		assert.Equal(t, attr.Width, pa.Width)
		assert.Equal(t, attr.Height, pa.Height)
		assert.Equal(t, 0, pa.Orientation)
	}
}

func TestSaveToCounts(t *testing.T) {
	var buf bytes.Buffer
	n, err := SaveTo(&buf, gradient(64, 64), WriteOption{})
	assert.NoError(t, err)
	assert.Equal(t, buf.Len(), n)

	cw := NewCountWriter(nil)
	n, err = SaveTo(cw, gradient(64, 64), WriteOption{Format: "png"})
	assert.NoError(t, err)
	assert.Equal(t, cw.Len(), n)

	_, err = SaveTo(&buf, gradient(8, 8), WriteOption{Format: "xcf"})
	assert.True(t, errors.Is(err, ErrorFormat))
}

func TestGuessType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(4, 4)))

	r := bytes.NewReader(buf.Bytes())
	it, ext, err := GuessType(r)
	assert.NoError(t, err)
	assert.Equal(t, TYPE_PNG, it)
	assert.Equal(t, ".png", ext)
	pos, _ := r.Seek(0, 1)
	assert.Zero(t, pos)

	assert.Equal(t, TYPE_JPEG, GuessTypeBytes([]byte("\xff\xd8\xff\xe0")))
	assert.Equal(t, TYPE_GIF, GuessTypeBytes([]byte("GIF89a")))
	assert.Equal(t, TYPE_WEBP, GuessTypeBytes([]byte("RIFF\x00\x00\x00\x00WEBPVP8 ")))
	assert.Equal(t, TYPE_TIFF, GuessTypeBytes([]byte("II*\x00")))
	assert.Equal(t, TYPE_BMP, GuessTypeBytes([]byte("BM\x00\x00")))

	_, _, err = GuessType(bytes.NewReader([]byte("hello")))
	assert.True(t, errors.Is(err, ErrorFormat))
	_, _, err = GuessType(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrorFormat))
}

func TestOpenNotImage(t *testing.T) {
	name := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(name, []byte("not an image at all"), 0644))

	_, _, err := Open(name)
	assert.True(t, errors.Is(err, ErrorFormat))
	_, err = Probe(name)
	assert.True(t, errors.Is(err, ErrorFormat))
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, "jpeg", Ext2Format(".JPG"))
	assert.Equal(t, "tiff", Ext2Format("tif"))
	assert.Equal(t, ".jpg", FormatExt("jpeg"))
	assert.Equal(t, ".webp", FormatExt(".webp"))
	assert.Equal(t, "", FormatExt(""))
}
