// Package config populates the HTTP daemon's configuration from CLI
// flags and environment variables, the same struct-tag-driven pattern
// the teacher's own option types use.
package config

import (
	"flag"

	"github.com/itzg/go-flagsfiller"
)

// Config is the optimization-service daemon's configuration.
type Config struct {
	ListenAddr string `default:"0.0.0.0:8000" usage:"address the HTTP server listens on"`

	// LogLevel is threaded into glog's -stderrthreshold severity flag by
	// main, after Load returns (info, warning, error, or fatal).
	LogLevel string `default:"info" usage:"minimum log severity: info, warning, error"`

	// DefaultMaxOptimizationTime is passed to solver.New and applies only
	// when a request omits its `options` object entirely — a request that
	// supplies `options` without maxOptimizationTime still gets the
	// domain package's own default, since that default is baked in during
	// JSON unmarshaling before this value is ever consulted.
	DefaultMaxOptimizationTime int `default:"30" usage:"default solve budget in seconds when a request omits the options object"`
}

// Load fills a Config from flags and environment variables (env vars take
// the form OPTSVC_LISTEN_ADDR, etc.) and parses args. glog registers its
// own flags (-v, -stderrthreshold, -logtostderr, ...) on flag.CommandLine
// at package-init; Load merges those onto its own FlagSet before parsing
// so a single Parse call satisfies both this service's flags and glog's,
// and callers don't also need a separate flag.Parse() over os.Args.
func Load(args []string) (Config, error) {
	var cfg Config
	filler := flagsfiller.New(flagsfiller.WithEnv("OPTSVC"))

	fs := flag.NewFlagSet("optimization-service", flag.ContinueOnError)
	if err := filler.Fill(fs, &cfg); err != nil {
		return Config{}, err
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		if fs.Lookup(f.Name) == nil {
			fs.Var(f.Value, f.Name, f.Usage)
		}
	})
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
