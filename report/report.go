// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/go-imsto/imbench/bench"
)

// ErrNoResults ...
var ErrNoResults = errors.New("no results to report")

// Generate writes a markdown comparison table for the given results.
func Generate(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	fastest := findFastest(results)

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Library | Suite | Mean | Min | Max | Files | Failed "+
		"| Output | Avg/File | Speedup | Stable |")
	fmt.Fprintln(w, "|---------|-------|------|-----|-----|-------|--------"+
		"|--------|----------|---------|--------|")

	var failed []bench.Result
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
		speedup := "-"
		if r.OK() && fastest > 0 && r.Mean > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(r.Mean)/float64(fastest))
		}

		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %d | %d | %s | %s | %s | %s |\n",
			r.Library,
			r.Suite,
			formatDuration(r.Mean),
			formatDuration(r.Min),
			formatDuration(r.Max),
			r.Files,
			r.Failed,
			formatBytes(r.OutputBytes),
			formatBytes(r.AvgFileBytes()),
			speedup,
			formatStable(r),
		)
	}

	if len(failed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed:")
		for _, r := range failed {
			fmt.Fprintf(w, "  - %s (%s): %s\n", r.Library, r.Suite, r.Err)
		}
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func findFastest(results []bench.Result) time.Duration {
	var fastest time.Duration
	for _, r := range results {
		if !r.OK() || r.Mean <= 0 {
			continue
		}
		if fastest == 0 || r.Mean < fastest {
			fastest = r.Mean
		}
	}
	return fastest
}

func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func formatBytes(b int64) string {
	if b <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(b))
}

func formatStable(r bench.Result) string {
	if r.Digest == "" {
		return "-"
	}
	if r.Stable {
		return "yes"
	}
	return "no"
}
