package homes

import (
	"strings"
	"testing"

	"github.com/danmuck/beltctl/internal/testutil/testlog"
)

func TestResolveFallbacksUnderHome(t *testing.T) {
	testlog.Start(t)
	r := NewResolver(MapSource{"HOME": "/x"})
	for _, kind := range Kinds() {
		got := r.Resolve(kind)
		if got == "" {
			t.Fatalf("kind %s resolved empty", kind)
		}
		if !strings.HasPrefix(got, "/x/.") {
			t.Fatalf("kind %s: fallback %q does not start with /x/.", kind, got)
		}
	}
}

func TestResolveFallbackAliases(t *testing.T) {
	testlog.Start(t)
	r := NewResolver(MapSource{"HOME": "/home/u"})
	cases := map[Kind]string{
		Log:     "/home/u/.log",
		Temp:    "/home/u/.temp",
		Data:    "/home/u/.local/share",
		Cache:   "/home/u/.cache",
		Config:  "/home/u/.config",
		Runtime: "/home/u/.runtime",
	}
	for kind, want := range cases {
		if got := r.Resolve(kind); got != want {
			t.Fatalf("kind %s: got %q want %q", kind, got, want)
		}
	}
}

func TestResolveOverrideBeatsStandardAndFallback(t *testing.T) {
	testlog.Start(t)
	r := NewResolver(MapSource{
		"HOME":            "/home/u",
		"CONFIG_HOME":     "/override/cfg",
		"XDG_CONFIG_HOME": "/xdg/cfg",
	})
	if got := r.Resolve(Config); got != "/override/cfg" {
		t.Fatalf("override ignored: got %q", got)
	}
}

func TestResolveStandardBeatsFallback(t *testing.T) {
	testlog.Start(t)
	r := NewResolver(MapSource{
		"HOME":            "/home/u",
		"XDG_CONFIG_HOME": "/tmp/cfg",
	})
	if got := r.Resolve(Config); got != "/tmp/cfg" {
		t.Fatalf("standard variable ignored: got %q", got)
	}
}

func TestResolveDegenerateHomeStillDefined(t *testing.T) {
	testlog.Start(t)
	r := NewResolver(MapSource{})
	for _, kind := range Kinds() {
		if got := r.Resolve(kind); got == "" {
			t.Fatalf("kind %s resolved empty with no environment at all", kind)
		}
	}
}

func TestResolveNeverCaches(t *testing.T) {
	testlog.Start(t)
	env := MapSource{"HOME": "/home/u"}
	r := NewResolver(env)
	first := r.Resolve(Cache)
	env["CACHE_HOME"] = "/elsewhere"
	second := r.Resolve(Cache)
	if first == second {
		t.Fatalf("resolver cached: %q == %q", first, second)
	}
	if second != "/elsewhere" {
		t.Fatalf("live change not observed: got %q", second)
	}
}

func TestOSSourceReadsProcessEnv(t *testing.T) {
	testlog.Start(t)
	t.Setenv("DATA_HOME", "/proc-env/data")
	if got := Resolve(Data); got != "/proc-env/data" {
		t.Fatalf("OSSource resolve: got %q", got)
	}
}

func TestByName(t *testing.T) {
	testlog.Start(t)
	for _, kind := range Kinds() {
		got, ok := ByName(kind.String())
		if !ok || got != kind {
			t.Fatalf("ByName(%q) = %v, %v", kind.String(), got, ok)
		}
	}
	if _, ok := ByName("bogus"); ok {
		t.Fatalf("ByName accepted bogus kind")
	}
}
