package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-imsto/imbench/bench"
	"github.com/go-imsto/imbench/config"
	cimg "github.com/go-imsto/imbench/image"
	"github.com/go-imsto/imbench/resizer"
)

func testConfig() config.Config {
	return config.Config{
		ImageDir:   "images",
		OutputDir:  "output",
		MaxImages:  20,
		ThumbSize:  150,
		Quality:    75,
		Format:     "jpeg",
		Iterations: 5,
	}
}

func makeImages(t *testing.T, n int) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(dir, 0755))
	for i := 0; i < n; i++ {
		m := image.NewRGBA(image.Rect(0, 0, 120+i*10, 80))
		for y := 0; y < 80; y++ {
			for x := 0; x < 120+i*10; x++ {
				m.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
			}
		}
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("p%d.jpg", i)))
		require.NoError(t, err)
		require.NoError(t, jpeg.Encode(f, m, nil))
		require.NoError(t, f.Close())
	}
	return root
}

func TestSettingsMerge(t *testing.T) {
	c := testConfig()
	c.Libraries = []string{"Nfnt", "Gift"}

	s := settings{}.merge(c)
	assert.Equal(t, "Nfnt,Gift", s.libs)
	assert.Equal(t, 5, s.iterations)
	assert.Equal(t, 0, s.parallelism)
	assert.Equal(t, uint(150), s.size)
	assert.Equal(t, uint(75), s.quality)
	assert.Equal(t, "jpeg", s.format)

	s = settings{libs: "Rez", iterations: 2, parallelism: 4, size: 64, quality: 90, format: "png"}.merge(c)
	assert.Equal(t, settings{libs: "Rez", iterations: 2, parallelism: 4, size: 64, quality: 90, format: "png"}, s)
}

func TestThumbOption(t *testing.T) {
	topt, err := settings{size: 100, quality: 80, format: ".JPG"}.thumbOption()
	require.NoError(t, err)
	assert.Equal(t, uint(100), topt.GetSize())
	assert.Equal(t, 80, topt.GetQuality())
	assert.Equal(t, ".jpg", topt.Ext())

	_, err = settings{format: "bmp"}.thumbOption()
	assert.True(t, errors.Is(err, cimg.ErrorFormat))

	_, err = settings{quality: 101}.thumbOption()
	assert.Error(t, err)
}

func TestSplitLibs(t *testing.T) {
	assert.Nil(t, splitLibs(""))
	assert.Equal(t, []string{"Nfnt", "Gift"}, splitLibs(" Nfnt, ,Gift,"))
}

func TestRunBenchJSON(t *testing.T) {
	root := makeImages(t, 3)
	s := settings{libs: "Nfnt,Imaging", iterations: 2, asJSON: true}.merge(testConfig())

	var buf bytes.Buffer
	err := runBench(context.Background(), &buf, root, bench.SuiteLoadResizeSave, s, testConfig())
	require.NoError(t, err)

	var results []bench.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	for _, res := range results {
		assert.True(t, res.OK(), res.Err)
		assert.Equal(t, "lrs", res.Suite)
		assert.Equal(t, 2, res.Iterations)
		assert.Equal(t, 3, res.Files)
		assert.Equal(t, 0, res.Failed)

		matches, err := filepath.Glob(filepath.Join(root, "output", "*-"+res.Library+".jpg"))
		require.NoError(t, err)
		assert.Len(t, matches, 3)
	}
}

func TestRunBenchResizeTable(t *testing.T) {
	s := settings{libs: "XDraw", iterations: 1}.merge(testConfig())

	var buf bytes.Buffer
	// the resize suite needs no image dir
	err := runBench(context.Background(), &buf, t.TempDir(), bench.SuiteResize, s, testConfig())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "| XDraw | resize |")
	assert.Contains(t, buf.String(), "1.00x")
}

func TestRunBenchErrors(t *testing.T) {
	root := makeImages(t, 1)
	c := testConfig()

	var out bytes.Buffer
	err := runBench(context.Background(), &out, root, bench.SuiteResize,
		settings{libs: "Imagi"}.merge(c), c)
	assert.True(t, errors.Is(err, errNoScaler))
	assert.Empty(t, out.String())

	err = runBench(context.Background(), &bytes.Buffer{}, root, bench.SuiteOnce,
		settings{libs: "SkiaSharp"}.merge(c), c)
	assert.True(t, errors.Is(err, resizer.ErrUnknownLibrary))

	err = runBench(context.Background(), &bytes.Buffer{}, root, bench.SuiteOnce,
		settings{format: "tiff"}.merge(c), c)
	assert.True(t, errors.Is(err, cimg.ErrorFormat))

	c.ImageDir = "imbench-no-such-images-dir"
	err = runBench(context.Background(), &bytes.Buffer{}, root, bench.SuiteOnce, settings{}.merge(c), c)
	assert.True(t, errors.Is(err, bench.ErrNoImageDir))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err = runBench(ctx, &buf, root, bench.SuiteLoadResizeSave, settings{libs: "Nfnt"}.merge(testConfig()), testConfig())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, buf.String())
}

func TestPrintLibraries(t *testing.T) {
	var buf bytes.Buffer
	printLibraries(&buf)
	assert.Contains(t, buf.String(), "Nfnt       in-memory resize: yes")
	assert.Contains(t, buf.String(), "Imagi      in-memory resize: no")
}

func TestPrintWorkspace(t *testing.T) {
	root := makeImages(t, 2)
	c := testConfig()
	ws, err := bench.NewWorkspace(root, c.ImageDir, c.OutputDir, c.MaxImages)
	require.NoError(t, err)

	var buf bytes.Buffer
	printWorkspace(&buf, ws)
	out := buf.String()
	assert.Contains(t, out, "images: "+ws.ImageDir)
	assert.Contains(t, out, "p0.jpg")
	assert.Contains(t, out, "120x80 .jpg")
	assert.Contains(t, out, "130x80 .jpg")
	assert.Contains(t, out, "2 files, ")
}
