package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables consulted by DetectOptions.
const (
	EnvBackend = "GOAPPBAR_BACKEND"
	EnvLayout  = "GOAPPBAR_LAYOUT"
	EnvDebug   = "GOAPPBAR_DEBUG"
)

// Options captures how the tool reaches the docking service.
// Values may be provided via the Windows registry or environment variables,
// and are finally overridden by command-line flags.
type Options struct {
	// Backend names the docking service implementation; empty selects the
	// platform default.
	Backend string
	// Layout is the YAML desktop description used by the simulated backend.
	Layout string
	Debug  bool
}

// DetectOptions resolves options from the registry and the environment.
func DetectOptions() Options {
	return detectOptionsWith(readRegistrySettings(), os.Getenv)
}

func detectOptionsWith(reg map[string]string, getenv func(string) string) Options {
	opts := Options{}
	opts.Backend = strings.ToLower(firstNonEmpty(reg["Backend"], getenv(EnvBackend)))
	opts.Layout = firstNonEmpty(reg["Layout"], getenv(EnvLayout))
	opts.Debug = parseBool(firstNonEmpty(reg["Debug"], getenv(EnvDebug)))
	return opts
}

// Override applies non-empty command-line values on top of o. A nil debug
// leaves the detected setting alone; an explicit false turns it off.
func (o Options) Override(backend, layout string, debug *bool) Options {
	if trimmed := strings.TrimSpace(backend); trimmed != "" {
		o.Backend = strings.ToLower(trimmed)
	}
	if trimmed := strings.TrimSpace(layout); trimmed != "" {
		o.Layout = trimmed
	}
	if debug != nil {
		o.Debug = *debug
	}
	return o
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func parseBool(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	out, err := strconv.ParseBool(trimmed)
	if err != nil {
		return false
	}
	return out
}
