package cmd

import (
	"path/filepath"

	"github.com/getsentry/raven-go"

	"github.com/go-imsto/imbench/bench"
	"github.com/go-imsto/imbench/config"
)

var (
	packagePrefixes = []string{"github.com/go-imsto"}

	sentryEnabled bool
	captureError  = reportError
)

func setupSentry(dsn string) {
	if dsn == "" {
		return
	}
	if err := raven.SetDSN(dsn); err != nil {
		logger().Warnw("sentry dsn fail", "err", err)
		return
	}
	raven.SetRelease(config.Version)
	sentryEnabled = true
	atExit(raven.Wait)
}

func reportError(err error, tags map[string]string) {
	var packet *raven.Packet
	packet = raven.NewPacket(err.Error(),
		raven.NewException(err, raven.NewStacktrace(1, 3, packagePrefixes)))

	raven.Capture(packet, tags)
}

// reportFailure is the runner's error hook
func reportFailure(library string, suite bench.Suite, src string, err error) {
	if !sentryEnabled {
		return
	}
	tags := map[string]string{
		"library": library,
		"suite":   suite.String(),
	}
	if src != "" {
		tags["file"] = filepath.Base(src)
	}
	captureError(err, tags)
}
