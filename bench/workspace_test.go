package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(filepath.Base(name)), 0644))
	return name
}

func TestFindImageDir(t *testing.T) {
	root := t.TempDir()
	images := filepath.Join(root, "a", "images")
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(images, 0755))
	require.NoError(t, os.MkdirAll(deep, 0755))

	found, err := FindImageDir(deep, "images")
	require.NoError(t, err)
	assert.Equal(t, images, found)

	found, err = FindImageDir(filepath.Join(root, "a"), "images")
	require.NoError(t, err)
	assert.Equal(t, images, found)

	// a plain file with the same name does not count
	touch(t, filepath.Join(deep, "pics"))
	_, err = FindImageDir(deep, "pics")
	assert.True(t, errors.Is(err, ErrNoImageDir))

	_, err = FindImageDir(deep, "imbench-no-such-images-dir")
	assert.True(t, errors.Is(err, ErrNoImageDir))
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for i := 24; i >= 0; i-- {
		touch(t, filepath.Join(dir, fmt.Sprintf("img%02d.jpg", i)))
	}
	touch(t, filepath.Join(dir, ".DS_Store"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img00-dir"), 0755))

	list, err := ListImages(dir, 0)
	require.NoError(t, err)
	require.Len(t, list, DefaultMaxImages)
	assert.Equal(t, filepath.Join(dir, "img00.jpg"), list[0])
	assert.Equal(t, filepath.Join(dir, "img19.jpg"), list[19])

	list, err = ListImages(dir, 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = ListImages(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestPrepareOutput(t *testing.T) {
	root := t.TempDir()
	images := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(images, 0755))

	out, err := PrepareOutput(images, "output")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "output"), out)
	assert.DirExists(t, out)

	keep := touch(t, filepath.Join(out, "keep.jpg"))
	again, err := PrepareOutput(images, "output")
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.FileExists(t, keep)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/output", "photo-Nfnt.jpg"),
		OutputPath("/tmp/images/photo.png", "/tmp/output", "Nfnt", ".jpg"))
	assert.Equal(t, filepath.Join("out", "a.b-Gift.webp"),
		OutputPath("a.b.tiff", "out", "Gift", ".webp"))

	ws := &Workspace{OutputDir: "out", Images: []string{"in/x.jpg", "in/y.jpg"}}
	assert.Equal(t, []string{filepath.Join("out", "x-Rez.jpg"), filepath.Join("out", "y-Rez.jpg")},
		ws.OutputPaths("Rez", ".jpg"))
}

func TestNewWorkspace(t *testing.T) {
	root := t.TempDir()
	images := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(images, 0755))
	start := filepath.Join(root, "src", "cmd")
	require.NoError(t, os.MkdirAll(start, 0755))

	_, err := NewWorkspace(start, "", "", 0)
	assert.True(t, errors.Is(err, ErrNoImages))

	touch(t, filepath.Join(images, "one.jpg"))
	touch(t, filepath.Join(images, "two.png"))
	ws, err := NewWorkspace(start, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, images, ws.ImageDir)
	assert.Equal(t, filepath.Join(root, "output"), ws.OutputDir)
	assert.Len(t, ws.Images, 2)
	assert.DirExists(t, ws.OutputDir)
}

func TestParseSuite(t *testing.T) {
	tests := []struct {
		input string
		want  Suite
	}{
		{"0", SuiteOnce},
		{"once", SuiteOnce},
		{"1", SuiteResize},
		{" Resize ", SuiteResize},
		{"2", SuiteLoadResizeSave},
		{"lrs", SuiteLoadResizeSave},
		{"load-resize-save", SuiteLoadResizeSave},
		{"3", SuiteParallel},
		{"parallel", SuiteParallel},
	}
	for _, tt := range tests {
		got, err := ParseSuite(tt.input)
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "4", "-1", "magick"} {
		_, err := ParseSuite(bad)
		assert.True(t, errors.Is(err, ErrUnknownSuite), bad)
	}

	assert.Equal(t, "lrs", SuiteLoadResizeSave.String())
	assert.Equal(t, "suite(9)", Suite(9).String())
	assert.Equal(t, "Load, resize, save in parallel", SuiteParallel.Title())
	assert.Len(t, Suites(), 4)
}
