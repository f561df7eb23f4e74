// Package homes resolves standard per-purpose directory paths.
//
// Ownership boundary:
// - kind-to-variable precedence rules
// - fallback construction under the user's home directory
//
// Resolution is read-only: the resolver never assigns defaults back into
// the process environment, and never caches. Callers that need a stable
// path must capture the result themselves.
package homes

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Kind enumerates directory purposes.
type Kind int

const (
	Log Kind = iota
	Temp
	Data
	Cache
	Config
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Log:
		return "log"
	case Temp:
		return "temp"
	case Data:
		return "data"
	case Cache:
		return "cache"
	case Config:
		return "config"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Log, Temp, Data, Cache, Config, Runtime}
}

// ByName maps a lowercase kind name back to its Kind.
func ByName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// rule ties a Kind to its lookup chain: a kind-specific override variable,
// a cross-desktop standard variable, and a fallback path under $HOME.
type rule struct {
	override string
	standard string
	fallback string
}

// Temp has no cross-desktop standard variable; its chain skips straight
// from the override to the fallback.
var rules = map[Kind]rule{
	Log:     {"LOG_HOME", "XDG_LOG_HOME", ".log"},
	Temp:    {"TEMP_HOME", "", ".temp"},
	Data:    {"DATA_HOME", "XDG_DATA_HOME", ".local/share"},
	Cache:   {"CACHE_HOME", "XDG_CACHE_HOME", ".cache"},
	Config:  {"CONFIG_HOME", "XDG_CONFIG_HOME", ".config"},
	Runtime: {"RUNTIME_HOME", "XDG_RUNTIME_HOME", ".runtime"},
}

// Source supplies variable values by name. Implementations must be
// read-only; Resolve never writes anything back through a Source.
type Source interface {
	Lookup(name string) string
}

// SourceFunc adapts a plain lookup function to Source.
type SourceFunc func(name string) string

func (f SourceFunc) Lookup(name string) string { return f(name) }

// MapSource is a fixed name-to-value mapping, mainly for tests.
type MapSource map[string]string

func (m MapSource) Lookup(name string) string { return m[name] }

// Resolver computes directory paths from a Source.
type Resolver struct {
	src Source
}

// NewResolver returns a Resolver reading from src.
func NewResolver(src Source) Resolver {
	return Resolver{src: src}
}

// Resolve returns the directory path for kind. It never fails: when the
// override and standard variables are both empty it falls back to a path
// under $HOME, and when HOME itself is empty the fallback is still
// constructed. That degenerate path is noted at debug level; validating
// its usability is the caller's job.
func (r Resolver) Resolve(kind Kind) string {
	ru := rules[kind]
	if v := r.src.Lookup(ru.override); v != "" {
		return v
	}
	if ru.standard != "" {
		if v := r.src.Lookup(ru.standard); v != "" {
			return v
		}
	}
	home := r.src.Lookup("HOME")
	if home == "" {
		log.Debug().Str("kind", kind.String()).Msg("HOME unset; resolved path is degenerate")
	}
	return filepath.Join(home, filepath.FromSlash(ru.fallback))
}

// OverrideVar returns the kind-specific override variable name for kind.
func OverrideVar(kind Kind) string { return rules[kind].override }

// StandardVar returns the cross-desktop variable name for kind, or empty
// when the kind has none.
func StandardVar(kind Kind) string { return rules[kind].standard }
