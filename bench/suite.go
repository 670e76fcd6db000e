package bench

import (
	"errors"
	"fmt"
	"strings"
)

// Suite ...
type Suite int

const (
	// SuiteOnce runs load, resize, save once per library, without timing loops
	SuiteOnce Suite = iota
	// SuiteResize scales a blank image in memory
	SuiteResize
	// SuiteLoadResizeSave processes every file sequentially
	SuiteLoadResizeSave
	// SuiteParallel processes the files concurrently
	SuiteParallel
)

// ErrUnknownSuite ...
var ErrUnknownSuite = errors.New("unknown suite")

var suiteNames = []string{"once", "resize", "lrs", "parallel"}

var suiteTitles = []string{
	`Just run "Load, Resize, Save" once, don't benchmark`,
	"Resize",
	"Load, resize, save",
	"Load, resize, save in parallel",
}

// Suites in menu order
func Suites() []Suite {
	return []Suite{SuiteOnce, SuiteResize, SuiteLoadResizeSave, SuiteParallel}
}

func (s Suite) String() string {
	if s < 0 || int(s) >= len(suiteNames) {
		return fmt.Sprintf("suite(%d)", int(s))
	}
	return suiteNames[s]
}

// Title is the menu label
func (s Suite) Title() string {
	if s < 0 || int(s) >= len(suiteTitles) {
		return s.String()
	}
	return suiteTitles[s]
}

// ParseSuite accepts the menu number or the name
func ParseSuite(v string) (Suite, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range suiteNames {
		if v == name || v == fmt.Sprint(i) {
			return Suite(i), nil
		}
	}
	switch v {
	case "load-resize-save", "loadresizesave":
		return SuiteLoadResizeSave, nil
	case "par":
		return SuiteParallel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuite, v)
}
