package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-imsto/imbench/bench"
	"github.com/go-imsto/imbench/config"
	cimg "github.com/go-imsto/imbench/image"
	"github.com/go-imsto/imbench/report"
	"github.com/go-imsto/imbench/resizer"
)

var cmdRun = &Command{
	UsageLine: "run [-suite lrs] [-libs Nfnt,Gift] [-n 5] [-j 0] [-size 150] [-q 75] [-format jpeg] [-json]",
	Short:     "run one benchmark suite without the menu",
	Long: `
Run one suite over the selected libraries and print a comparison table.

Suites: once, resize, lrs, parallel (or their menu numbers 0-3).
Flags left at zero fall back to the IMBENCH_* environment.
`,
}

var errNoScaler = errors.New("no selected library supports the resize suite, see 'imbench list'")

// settings of one benchmark run, zero values fall back to config
type settings struct {
	libs        string
	iterations  int
	parallelism int
	size        uint
	quality     uint
	format      string
	asJSON      bool
}

var (
	rsuite string
	rset   settings
)

func init() {
	cmdRun.Run = runRun
	cmdRun.Flag.StringVar(&rsuite, "suite", "lrs", "once, resize, lrs or parallel")
	cmdRun.Flag.StringVar(&rset.libs, "libs", "", "comma separated libraries, empty for all")
	cmdRun.Flag.IntVar(&rset.iterations, "n", 0, "iterations per library")
	cmdRun.Flag.IntVar(&rset.parallelism, "j", 0, "workers of the parallel suite")
	cmdRun.Flag.UintVar(&rset.size, "size", 0, "thumbnail bounding square")
	cmdRun.Flag.UintVar(&rset.quality, "q", 0, "output quality, 1-100")
	cmdRun.Flag.StringVar(&rset.format, "format", "", "output format: jpeg, png, gif or webp")
	cmdRun.Flag.BoolVar(&rset.asJSON, "json", false, "print results as json")
}

func runRun(args []string) bool {
	suite, err := bench.ParseSuite(rsuite)
	if err != nil {
		errorf("%s", err)
		return false
	}
	wd, err := os.Getwd()
	if err != nil {
		logger().Fatalw("getwd fail", "err", err)
	}
	if err = runBench(rootContext(), os.Stdout, wd, suite, rset.merge(config.Current), config.Current); err != nil {
		errorf("%s", err)
		setExitStatus(1)
	}
	return true
}

func (s settings) merge(c config.Config) settings {
	if s.libs == "" {
		s.libs = strings.Join(c.Libraries, ",")
	}
	if s.iterations <= 0 {
		s.iterations = c.Iterations
	}
	if s.parallelism <= 0 {
		s.parallelism = c.Parallelism
	}
	if s.size == 0 {
		s.size = c.ThumbSize
	}
	if s.quality == 0 {
		s.quality = uint(c.Quality)
	}
	if s.format == "" {
		s.format = c.Format
	}
	return s
}

func (s settings) thumbOption() (cimg.ThumbOption, error) {
	topt := cimg.ThumbOption{
		Size: s.size,
		WriteOption: cimg.WriteOption{
			Format:  cimg.Ext2Format(s.format),
			Quality: cimg.Quality(s.quality),
		},
	}
	if s.quality > cimg.MAX_JPEG_QUALITY {
		return topt, fmt.Errorf("quality %d out of range 1-%d", s.quality, cimg.MAX_JPEG_QUALITY)
	}
	switch topt.GetFormat() {
	case "jpeg", "png", "gif", "webp":
	default:
		return topt, fmt.Errorf("%w: %q", cimg.ErrorFormat, s.format)
	}
	return topt, nil
}

func splitLibs(v string) []string {
	var names []string
	for _, name := range strings.Split(v, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// runBench runs suite from start and writes the report to w. Results gathered
// before a cancellation are still reported.
func runBench(ctx context.Context, w io.Writer, start string, suite bench.Suite, s settings, c config.Config) error {
	resizers, err := resizer.Select(splitLibs(s.libs))
	if err != nil {
		return err
	}
	topt, err := s.thumbOption()
	if err != nil {
		return err
	}

	if suite == bench.SuiteResize && !anyScaler(resizers) {
		return errNoScaler
	}

	var ws *bench.Workspace
	if suite != bench.SuiteResize {
		ws, err = bench.NewWorkspace(start, c.ImageDir, c.OutputDir, c.MaxImages)
		if err != nil {
			return err
		}
		logger().Infow("workspace", "images", ws.ImageDir, "count", len(ws.Images), "output", ws.OutputDir)
	}

	runner := bench.New(ws,
		bench.WithIterations(s.iterations),
		bench.WithParallelism(s.parallelism),
		bench.WithThumbOption(topt),
		bench.WithErrorHook(reportFailure),
	)
	logger().Infow("start", "suite", suite, "libs", len(resizers), "thumb", topt.String())
	results, runErr := runner.Run(ctx, suite, resizers)
	if len(results) > 0 {
		if s.asJSON {
			err = report.GenerateJSON(w, results)
		} else {
			err = report.Generate(w, results)
		}
		if err != nil {
			return err
		}
	}
	return runErr
}

func anyScaler(resizers []resizer.Resizer) bool {
	for _, rz := range resizers {
		if resizer.CanScale(rz) {
			return true
		}
	}
	return false
}
