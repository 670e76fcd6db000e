// Package bench discovers the sample images and times every library over them.
package bench

import (
	"time"
)

// Result of one library in one suite
type Result struct {
	Library     string        `json:"library"`
	Suite       string        `json:"suite"`
	Iterations  int           `json:"iterations"`
	Files       int           `json:"files"`
	Failed      int           `json:"failed"`
	Mean        time.Duration `json:"mean_ns"`
	Min         time.Duration `json:"min_ns"`
	Max         time.Duration `json:"max_ns"`
	OutputBytes int64         `json:"output_bytes"`
	Digest      string        `json:"digest,omitempty"`
	Stable      bool          `json:"stable"`
	Err         string        `json:"error,omitempty"`
}

// OK ...
func (r Result) OK() bool {
	return r.Err == ""
}

// Succeeded is the number of files written per iteration
func (r Result) Succeeded() int {
	return r.Files - r.Failed
}

// AvgFileBytes is the mean output size of one written file
func (r Result) AvgFileBytes() int64 {
	if n := r.Succeeded(); n > 0 {
		return r.OutputBytes / int64(n)
	}
	return 0
}

func (r *Result) addTimings(timings []time.Duration) {
	r.Iterations = len(timings)
	if len(timings) == 0 {
		return
	}
	var total time.Duration
	r.Min, r.Max = timings[0], timings[0]
	for _, d := range timings {
		total += d
		if d < r.Min {
			r.Min = d
		}
		if d > r.Max {
			r.Max = d
		}
	}
	r.Mean = total / time.Duration(len(timings))
}

func (r *Result) addDigests(digests []string) {
	if len(digests) == 0 {
		return
	}
	r.Digest = digests[len(digests)-1]
	r.Stable = true
	for _, d := range digests[1:] {
		if d != digests[0] {
			r.Stable = false
			return
		}
	}
}
