package resizer

import (
	"fmt"
	"image"
	"path/filepath"
	"testing"

	cimg "github.com/go-imsto/imbench/image"
)

func BenchmarkLoadResizeSave(b *testing.B) {
	dir := b.TempDir()
	src := writeSample(b, filepath.Join(dir, "sample.jpg"), 1280, 853)
	topt := cimg.ThumbOption{Size: cimg.DefaultThumbSize}

	for _, rz := range All() {
		dst := filepath.Join(dir, "output", fmt.Sprintf("sample-%s%s", rz.Name(), topt.Ext()))
		b.Run(rz.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := rz.LoadResizeSave(src, dst, topt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScale(b *testing.B) {
	src := image.NewRGBA(image.Rect(0, 0, 1280, 853))
	w, h := cimg.ScaledSize(1280, 853, cimg.DefaultThumbSize)

	for _, rz := range All() {
		s, ok := rz.(Scaler)
		if !ok {
			continue
		}
		b.Run(rz.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := s.Scale(src, w, h); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
