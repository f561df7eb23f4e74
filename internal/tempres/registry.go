package tempres

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
)

var (
	mu       sync.Mutex
	registry []func()
	hookOnce sync.Once
)

// register appends one cleanup action. Safe for concurrent use; entries
// are only ever appended, so two acquisitions can never overwrite each
// other's slot.
func register(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, fn)
}

// Shutdown runs every registered cleanup, newest first, and empties the
// registry. It is the single exit-time hook: call it from the process
// exit path; the signal hook funnels here too. Running it more than once
// is harmless since each cleanup is individually idempotent.
func Shutdown() {
	mu.Lock()
	fns := registry
	registry = nil
	mu.Unlock()
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// InstallSignalHook arranges for Shutdown to run when the process takes
// SIGINT or SIGTERM, then exits. Install once from the entrypoint; later
// calls are no-ops.
func InstallSignalHook() {
	hookOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-ch
			log.Debug().Str("signal", sig.String()).Msg("removing scoped temp resources")
			Shutdown()
			os.Exit(1)
		}()
	})
}
