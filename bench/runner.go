package bench

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-imsto/imbench/digest"
	cimg "github.com/go-imsto/imbench/image"
	zlog "github.com/go-imsto/imbench/log"
	"github.com/go-imsto/imbench/resizer"
)

const (
	DefaultIterations = 5

	// blank source of the Resize suite
	ResizeSourceWidth  = 1280
	ResizeSourceHeight = 853
)

var errNoWorkspace = errors.New("suite needs an image workspace")

// ErrorHook receives every per-file failure, src is empty in the Resize suite
type ErrorHook func(library string, suite Suite, src string, err error)

// Option ...
type Option func(*Runner)

// WithIterations ...
func WithIterations(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.iterations = n
		}
	}
}

// WithParallelism bounds the parallel suite, n <= 0 means GOMAXPROCS
func WithParallelism(n int) Option {
	return func(r *Runner) {
		r.parallelism = n
	}
}

// WithThumbOption ...
func WithThumbOption(topt cimg.ThumbOption) Option {
	return func(r *Runner) {
		r.topt = topt
	}
}

// WithErrorHook ...
func WithErrorHook(fn ErrorHook) Option {
	return func(r *Runner) {
		r.onError = fn
	}
}

// Runner ...
type Runner struct {
	ws          *Workspace
	topt        cimg.ThumbOption
	iterations  int
	parallelism int
	onError     ErrorHook
}

// New returns a Runner, ws may be nil when only the Resize suite is run
func New(ws *Workspace, opts ...Option) *Runner {
	r := &Runner{ws: ws, iterations: DefaultIterations}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism <= 0 {
		r.parallelism = runtime.GOMAXPROCS(0)
	}
	return r
}

type outcome struct {
	attr *cimg.Attr
	err  error
}

// Run benchmarks every resizer in suite. A failing library is reported in its
// Result and the run goes on; only cancellation stops it early.
func (r *Runner) Run(ctx context.Context, suite Suite, resizers []resizer.Resizer) ([]Result, error) {
	var results []Result
	for _, rz := range resizers {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var (
			res Result
			err error
		)
		switch suite {
		case SuiteResize:
			s, ok := rz.(resizer.Scaler)
			if !ok {
				logger().Infow("skip, no in-memory resize", "lib", rz.Name())
				continue
			}
			res, err = r.runScale(ctx, rz.Name(), s)
		case SuiteOnce, SuiteLoadResizeSave, SuiteParallel:
			if r.ws == nil {
				return results, errNoWorkspace
			}
			res, err = r.runFiles(ctx, suite, rz)
		default:
			return results, fmt.Errorf("%w: %d", ErrUnknownSuite, int(suite))
		}
		results = append(results, res)
		if err != nil {
			return results, err
		}
		logger().Infow("done", "lib", res.Library, "suite", res.Suite, "mean", res.Mean,
			"files", res.Files, "failed", res.Failed, "bytes", res.OutputBytes, "err", res.Err)
	}
	return results, nil
}

func (r *Runner) runFiles(ctx context.Context, suite Suite, rz resizer.Resizer) (Result, error) {
	iterations := r.iterations
	if suite == SuiteOnce {
		iterations = 1
	}
	images := r.ws.Images
	outputs := r.ws.OutputPaths(rz.Name(), r.topt.Ext())
	res := Result{Library: rz.Name(), Suite: suite.String(), Files: len(images)}

	var (
		timings []time.Duration
		digests []string
	)
	finish := func(err error) (Result, error) {
		res.addTimings(timings)
		res.addDigests(digests)
		return res, err
	}

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		start := time.Now()
		outcomes := r.iterate(ctx, suite, rz, outputs)
		elapsed := time.Since(start)
		logger().Debugw("iteration", "lib", rz.Name(), "suite", suite, "i", i, "elapsed", elapsed)

		written := make([]string, len(outputs))
		var (
			failed   int
			firstErr error
			bytes    int64
		)
		for j, o := range outcomes {
			if o.err != nil {
				failed++
				if firstErr == nil {
					firstErr = o.err
				}
				if i == 0 {
					r.report(rz.Name(), suite, images[j], o.err)
				}
				continue
			}
			written[j] = outputs[j]
			if o.attr != nil {
				bytes += int64(o.attr.Size)
			}
		}
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		if failed > res.Failed {
			res.Failed = failed
		}
		if failed == len(images) {
			res.Err = fmt.Sprintf("all %d files failed: %s", failed, firstErr)
			break
		}
		timings = append(timings, elapsed)
		res.OutputBytes = bytes

		sum, err := digest.SumFiles(written...)
		if err != nil {
			logger().Warnw("digest fail", "lib", rz.Name(), "err", err)
			continue
		}
		digests = append(digests, sum)
	}

	return finish(nil)
}

// iterate runs one pass over all images, outcomes are indexed like the images
func (r *Runner) iterate(ctx context.Context, suite Suite, rz resizer.Resizer, outputs []string) []outcome {
	images := r.ws.Images
	outcomes := make([]outcome, len(images))
	if suite != SuiteParallel {
		for i, src := range images {
			outcomes[i].attr, outcomes[i].err = loadResizeSave(rz, src, outputs[i], r.topt)
		}
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i := range images {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].err = err
				return nil
			}
			outcomes[i].attr, outcomes[i].err = loadResizeSave(rz, images[i], outputs[i], r.topt)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (r *Runner) runScale(ctx context.Context, name string, s resizer.Scaler) (Result, error) {
	res := Result{Library: name, Suite: SuiteResize.String(), Files: 1}
	src := image.NewRGBA(image.Rect(0, 0, ResizeSourceWidth, ResizeSourceHeight))
	w, h := cimg.ScaledSize(ResizeSourceWidth, ResizeSourceHeight, int(r.topt.GetSize()))

	var timings []time.Duration
	for i := 0; i < r.iterations; i++ {
		if err := ctx.Err(); err != nil {
			res.addTimings(timings)
			return res, err
		}
		start := time.Now()
		out, err := scale(s, src, w, h)
		elapsed := time.Since(start)
		if err == nil && (out.Bounds().Dx() != w || out.Bounds().Dy() != h) {
			err = fmt.Errorf("%w: got %dx%d, want %dx%d", cimg.ErrInvalidSize, out.Bounds().Dx(), out.Bounds().Dy(), w, h)
		}
		if err != nil {
			r.report(name, SuiteResize, "", err)
			res.Failed = 1
			res.Err = err.Error()
			break
		}
		timings = append(timings, elapsed)
	}
	res.addTimings(timings)
	return res, nil
}

func (r *Runner) report(library string, suite Suite, src string, err error) {
	logger().Warnw("resize fail", "lib", library, "suite", suite, "src", src, "err", err)
	if r.onError != nil {
		r.onError(library, suite, src, err)
	}
}

// loadResizeSave turns a library panic into an error
func loadResizeSave(rz resizer.Resizer, src, dst string, topt cimg.ThumbOption) (attr *cimg.Attr, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s panic: %v", rz.Name(), p)
		}
	}()
	return rz.LoadResizeSave(src, dst, topt)
}

func scale(s resizer.Scaler, m image.Image, w, h int) (out image.Image, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("scale panic: %v", p)
		}
	}()
	return s.Scale(m, w, h)
}

func logger() zlog.Logger {
	return zlog.Get()
}
