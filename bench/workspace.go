package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-imsto/imbench/utils"
)

const (
	DefaultImageDir  = "images"
	DefaultOutputDir = "output"
	DefaultMaxImages = 20
)

var (
	ErrNoImageDir = errors.New("could not find an image directory")
	ErrNoImages   = errors.New("no images found")
)

// Workspace is the input set and where outputs go
type Workspace struct {
	ImageDir  string
	OutputDir string
	Images    []string
}

// NewWorkspace finds the closest image dir above start, lists at most limit
// images from it and readies the sibling output dir
func NewWorkspace(start, imageName, outputName string, limit int) (*Workspace, error) {
	if imageName == "" {
		imageName = DefaultImageDir
	}
	if outputName == "" {
		outputName = DefaultOutputDir
	}
	dir, err := FindImageDir(start, imageName)
	if err != nil {
		return nil, err
	}
	images, err := ListImages(dir, limit)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	out, err := PrepareOutput(dir, outputName)
	if err != nil {
		return nil, err
	}
	return &Workspace{ImageDir: dir, OutputDir: out, Images: images}, nil
}

// FindImageDir walks up from start until <dir>/<name> is a directory
func FindImageDir(start, name string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if utils.IsDir(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %q above %s", ErrNoImageDir, name, start)
		}
		dir = parent
	}
}

// ListImages returns the regular, non-hidden files of dir in lexical order,
// at most limit of them (limit <= 0 means DefaultMaxImages)
func ListImages(dir string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultMaxImages
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var images []string
	for _, e := range entries {
		if len(images) >= limit {
			break
		}
		if strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
			continue
		}
		images = append(images, filepath.Join(dir, e.Name()))
	}
	return images, nil
}

// PrepareOutput creates the output dir next to imageDir, or reuses it
func PrepareOutput(imageDir, name string) (string, error) {
	out := filepath.Join(filepath.Dir(imageDir), name)
	if err := os.MkdirAll(out, os.FileMode(0755)); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return out, nil
}

// OutputPath builds <outputDir>/<base>-<postfix><ext>
func OutputPath(input, outputDir, postfix, ext string) string {
	return filepath.Join(outputDir, utils.BaseName(input)+"-"+postfix+ext)
}

// OutputPaths maps every image to its output for one library
func (ws *Workspace) OutputPaths(postfix, ext string) []string {
	out := make([]string, len(ws.Images))
	for i, src := range ws.Images {
		out[i] = OutputPath(src, ws.OutputDir, postfix, ext)
	}
	return out
}
