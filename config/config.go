package config

import (
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	// NameSpace is the environment prefix, e.g. IMBENCH_ITERATIONS
	NameSpace = "imbench"
)

// Version of the binary, overridden by -ldflags
var Version = "dev"

// Config ...
type Config struct {
	ImageDir    string   `envconfig:"IMAGE_DIR" default:"images"`
	OutputDir   string   `envconfig:"OUTPUT_DIR" default:"output"`
	MaxImages   int      `envconfig:"MAX_IMAGES" default:"20"`
	ThumbSize   uint     `envconfig:"THUMB_SIZE" default:"150"`
	Quality     uint8    `envconfig:"QUALITY" default:"75"`
	Format      string   `envconfig:"FORMAT" default:"jpeg"`
	Iterations  int      `envconfig:"ITERATIONS" default:"5"`
	Parallelism int      `envconfig:"PARALLELISM" default:"0"` // 0: GOMAXPROCS
	Libraries   []string `envconfig:"LIBRARIES"`               // empty: all registered
	SentryDSN   string   `envconfig:"SENTRY_DSN"`
	Develop     bool     `envconfig:"DEVELOP"`
}

// Current the loaded config
var Current Config

// Load reads the environment into Current
func Load() error {
	var c Config
	if err := envconfig.Process(NameSpace, &c); err != nil {
		return err
	}
	Current = c
	return nil
}

// InDevelop ...
func InDevelop() bool {
	if Current.Develop {
		return true
	}
	return strings.HasPrefix(os.Getenv("GO_ENV"), "dev")
}

// Usage prints the supported environment variables
func Usage() error {
	return envconfig.Usage(NameSpace, &Config{})
}
