package image

import (
	"bytes"
	"io"
	"strings"
)

// TypeId ...
type TypeId uint8

const (
	TYPE_NONE TypeId = iota
	TYPE_GIF
	TYPE_JPEG
	TYPE_PNG
	TYPE_WEBP
	TYPE_BMP
	TYPE_TIFF
)

const (
	SIG_GIF  = "GIF8"
	SIG_JPG  = "\xff\xd8\xff"
	SIG_PNG  = "\211PNG\r\n\032\n"
	SIG_RIFF = "RIFF"
	SIG_WEBP = "WEBP"
	SIG_BMP  = "BM"
	SIG_TIFL = "II*\x00"
	SIG_TIFM = "MM\x00*"
)

const headSize = 12

// GuessTypeBytes ...
func GuessTypeBytes(data []byte) TypeId {
	switch {
	case bytes.HasPrefix(data, []byte(SIG_GIF)):
		return TYPE_GIF
	case bytes.HasPrefix(data, []byte(SIG_JPG)):
		return TYPE_JPEG
	case bytes.HasPrefix(data, []byte(SIG_PNG)):
		return TYPE_PNG
	case len(data) >= 12 && bytes.HasPrefix(data, []byte(SIG_RIFF)) && string(data[8:12]) == SIG_WEBP:
		return TYPE_WEBP
	case bytes.HasPrefix(data, []byte(SIG_TIFL)), bytes.HasPrefix(data, []byte(SIG_TIFM)):
		return TYPE_TIFF
	case bytes.HasPrefix(data, []byte(SIG_BMP)):
		return TYPE_BMP
	}
	return TYPE_NONE
}

// GuessType reads the head of r, a seekable r is rewound
func GuessType(r io.Reader) (t TypeId, ext string, err error) {
	head := make([]byte, headSize)
	var n int
	n, err = io.ReadFull(r, head)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err != nil {
		return
	}
	if rs, ok := r.(io.Seeker); ok {
		if _, err = rs.Seek(0, io.SeekStart); err != nil {
			return
		}
	}
	t = GuessTypeBytes(head[:n])
	ext = ExtByType(t)
	if t == TYPE_NONE {
		err = ErrorFormat
	}
	return
}

func ExtByType(t TypeId) string {
	switch t {
	case TYPE_GIF:
		return ".gif"
	case TYPE_JPEG:
		return ".jpg"
	case TYPE_PNG:
		return ".png"
	case TYPE_WEBP:
		return ".webp"
	case TYPE_BMP:
		return ".bmp"
	case TYPE_TIFF:
		return ".tiff"
	default:
		return ""
	}
}

// Ext2Format ".jpg" -> "jpeg"
func Ext2Format(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "jpg", "jpeg", "jpe":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return ext
}

// FormatExt "jpeg" -> ".jpg"
func FormatExt(format string) string {
	switch f := Ext2Format(format); f {
	case "jpeg":
		return ".jpg"
	case "":
		return ""
	default:
		return "." + f
	}
}
