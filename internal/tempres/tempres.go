// Package tempres owns scoped temporary filesystem resources.
//
// Ownership boundary:
// - unique temp file/directory creation
// - exit-time cleanup registration and execution
//
// A resource's lifecycle is create -> registered -> removed, in that
// order: the cleanup action is registered before the path is handed to
// the caller, so there is no window in which a kill leaks the entry
// after the caller has seen it. Ownership of a resource stays with the
// acquiring call site; it is never shared or handed off.
package tempres

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/beltctl/internal/ident"
)

// Kind selects the flavor of filesystem entry Acquire creates.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

var ErrCreate = errors.New("tempres: cannot create temp resource")

// Resource is a temporary filesystem entry whose removal is guaranteed
// at process shutdown.
type Resource struct {
	path string
	kind Kind
	once sync.Once
}

// Path returns the created entry's path.
func (r *Resource) Path() string { return r.path }

// Kind returns the entry's flavor.
func (r *Resource) Kind() Kind { return r.kind }

// Release removes the entry now instead of at shutdown. Releasing twice,
// or releasing after the entry is already gone, is not an error; the
// removal fires exactly once.
func (r *Resource) Release() error {
	var err error
	r.once.Do(func() { err = r.remove() })
	return err
}

func (r *Resource) remove() error {
	var err error
	switch r.kind {
	case Directory:
		err = os.RemoveAll(r.path)
	default:
		err = os.Remove(r.path)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Acquire creates a uniquely named temp entry under dir (the OS temp
// directory when dir is empty) and registers its removal with the
// shutdown registry before returning the resource. The name becomes the
// creation template prefix; the OS primitive appends its own uniqueness
// suffix, so collision avoidance is delegated, not reimplemented. When
// name is empty a fresh identifier names the entry.
//
// On creation failure nothing is registered and no path is returned.
// An unreadable entropy source surfaces as acquisition failure; there
// is no weaker naming fallback.
func Acquire(kind Kind, dir, name string) (*Resource, error) {
	if name == "" {
		id, err := ident.Generate()
		if err != nil {
			return nil, fmt.Errorf("tempres: name resource: %w", err)
		}
		name = id
	}
	pattern := name + "-*"

	var path string
	switch kind {
	case Directory:
		p, err := os.MkdirTemp(dir, pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCreate, err)
		}
		path = p
	default:
		f, err := os.CreateTemp(dir, pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCreate, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCreate, err)
		}
		path = f.Name()
	}

	res := &Resource{path: path, kind: kind}
	register(func() {
		if err := res.Release(); err != nil {
			log.Warn().Err(err).Str("path", res.path).Msg("temp cleanup failed")
		}
	})
	log.Debug().Str("kind", kind.String()).Str("path", path).Msg("temp resource acquired")
	return res, nil
}

// AcquireFile is Acquire(File, ...) for call sites that read better named.
func AcquireFile(dir, name string) (*Resource, error) {
	return Acquire(File, dir, name)
}

// AcquireDir is Acquire(Directory, ...).
func AcquireDir(dir, name string) (*Resource, error) {
	return Acquire(Directory, dir, name)
}
