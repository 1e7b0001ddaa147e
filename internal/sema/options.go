package sema

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
)

const defaultMaxDiagnostics = 256

// Options tunes an analysis run. The zero value of every field means "use
// the default".
type Options struct {
	// MaxDiagnostics caps the diagnostics kept per library.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Jobs bounds the number of libraries resolved concurrently;
	// 0 resolves as many as there are CPUs.
	Jobs int `toml:"jobs"`
}

// DefaultOptions returns the options Analyze runs with.
func DefaultOptions() Options {
	return Options{MaxDiagnostics: defaultMaxDiagnostics}
}

// LoadOptions reads analyzer options from a TOML file. Fields absent from
// the file keep their defaults; unknown keys are an error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("failed to decode %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return DefaultOptions(), fmt.Errorf("unknown option %q in %s", undecoded[0].String(), path)
	}
	return opts, nil
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return defaultMaxDiagnostics
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.NumCPU()
}
