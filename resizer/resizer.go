// Package resizer binds each imaging library to one load, resize and save
// routine. Backends register themselves in init, cgo-backed ones only when
// their build tag is set.
package resizer

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"

	cimg "github.com/go-imsto/imbench/image"
	zlog "github.com/go-imsto/imbench/log"
)

// ErrUnknownLibrary ...
var ErrUnknownLibrary = errors.New("unknown library")

// Resizer decodes src, fits it into topt's square, and writes it to dst
type Resizer interface {
	Name() string
	LoadResizeSave(src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error)
}

// Scaler is implemented by backends that resize a decoded image in memory
type Scaler interface {
	Scale(m image.Image, width, height int) (image.Image, error)
}

// NewFunc ...
type NewFunc func() Resizer

type backend struct {
	name string
	fn   NewFunc
}

var (
	mu       sync.RWMutex
	backends []backend
)

// Register a backend, registration order is the report order
func Register(name string, fn NewFunc) {
	if fn == nil {
		panic("resizer: Register backend is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	for _, b := range backends {
		if strings.EqualFold(b.name, name) {
			panic("resizer: Register called twice for backend " + name)
		}
	}
	backends = append(backends, backend{name, fn})
}

// Names of the registered backends
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.name
	}
	return names
}

// Get a new instance of the named backend, case insensitive
func Get(name string) (Resizer, error) {
	mu.RLock()
	defer mu.RUnlock()
	for _, b := range backends {
		if strings.EqualFold(b.name, name) {
			return b.fn(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLibrary, name)
}

// All returns an instance of every registered backend
func All() []Resizer {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Resizer, len(backends))
	for i, b := range backends {
		out[i] = b.fn()
	}
	return out
}

// Select resolves names, empty means all
func Select(names []string) ([]Resizer, error) {
	var out []Resizer
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		rz, err := Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, rz)
	}
	if len(out) == 0 {
		return All(), nil
	}
	return out, nil
}

// CanScale ...
func CanScale(rz Resizer) bool {
	_, ok := rz.(Scaler)
	return ok
}

func logger() zlog.Logger {
	return zlog.Get()
}

// outAttr builds the attr of a written thumbnail
func outAttr(dst string, w, h, n int) *cimg.Attr {
	attr := cimg.NewAttr(uint(w), uint(h), 0)
	attr.Size = cimg.Size(n)
	attr.Name = dst
	return attr
}

// decodeFit opens src and computes the fitted size
func decodeFit(src string, topt cimg.ThumbOption) (image.Image, int, int, error) {
	m, _, err := cimg.Open(src)
	if err != nil {
		return nil, 0, 0, err
	}
	b := m.Bounds()
	w, h, err := topt.Fit(b.Dx(), b.Dy())
	if err != nil {
		return nil, 0, 0, err
	}
	return m, w, h, nil
}

// scaleSave is the common path for backends that implement Scaler
func scaleSave(s Scaler, src, dst string, topt cimg.ThumbOption) (*cimg.Attr, error) {
	m, w, h, err := decodeFit(src, topt)
	if err != nil {
		return nil, err
	}
	out, err := s.Scale(m, w, h)
	if err != nil {
		return nil, err
	}
	n, err := cimg.SaveFile(dst, out, topt.WriteOption)
	if err != nil {
		return nil, err
	}
	ob := out.Bounds()
	return outAttr(dst, ob.Dx(), ob.Dy(), n), nil
}
