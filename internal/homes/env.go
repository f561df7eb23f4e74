package homes

import "os"

// OSSource reads the live process environment. Two Resolve calls through
// it may disagree when the environment changes in between; that is
// intentional, resolution reflects live state.
func OSSource() Source {
	return SourceFunc(os.Getenv)
}

// Resolve is shorthand for resolving kind against the process environment.
func Resolve(kind Kind) string {
	return NewResolver(OSSource()).Resolve(kind)
}
