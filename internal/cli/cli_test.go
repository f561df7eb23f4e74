package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/danmuck/beltctl/internal/testutil/testlog"
)

// isolate points the resolver environment at throwaway directories so a
// developer's real config cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
}

// run executes the command tree with args and returns combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHomeCommandResolvesKind(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("CONFIG_HOME", "")
	out, err := run(t, "home", "config")
	if err != nil {
		t.Fatalf("home config: %v", err)
	}
	if strings.TrimSpace(out) != "/tmp/cfg" {
		t.Fatalf("got %q", out)
	}
}

func TestHomeCommandRejectsUnknownKind(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	if _, err := run(t, "home", "bogus"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestHomeCommandListsAllKinds(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	out, err := run(t, "home")
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	for _, kind := range []string{"log", "temp", "data", "cache", "config", "runtime"} {
		if !strings.Contains(out, kind) {
			t.Fatalf("kind %s missing from listing:\n%s", kind, out)
		}
	}
}

func TestIDCommandOutput(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	out, err := run(t, "id", "-n", "2")
	if err != nil {
		t.Fatalf("id: %v", err)
	}
	lines := strings.Fields(out)
	if len(lines) != 2 {
		t.Fatalf("expected 2 ids, got %v", lines)
	}
	pattern := regexp.MustCompile(`^[0-9a-f]{32}$`)
	for _, l := range lines {
		if !pattern.MatchString(l) {
			t.Fatalf("bad identifier %q", l)
		}
	}
	if lines[0] == lines[1] {
		t.Fatalf("identifiers repeated: %q", lines[0])
	}
}

func TestSumAndIntCommands(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	out, err := run(t, "sum", "--", "1", "2.5", "-0.5")
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("sum output %q", out)
	}
	out, err = run(t, "int", "2.6")
	if err != nil {
		t.Fatalf("int: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("int output %q", out)
	}
	if _, err := run(t, "sum", "nope"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestFieldsCommand(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	out, err := run(t, "fields", "--delim", ":", "--index", "1", "a:b:c")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if strings.TrimSpace(out) != "b" {
		t.Fatalf("fields output %q", out)
	}
}

func TestCheckCommandExitBehavior(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	out, err := run(t, "check", "eq", "a", "a")
	if err != nil {
		t.Fatalf("check eq pass: %v", err)
	}
	if !strings.HasPrefix(out, "ok:") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := run(t, "check", "eq", "a", "b"); err == nil {
		t.Fatalf("failed assertion must surface an error")
	}
}

func TestMktempCommandPrintsLivePath(t *testing.T) {
	testlog.Start(t)
	isolate(t)
	root := t.TempDir()
	out, err := run(t, "mktemp", "--dir", "--root", root, "--name", "build123")
	if err != nil {
		t.Fatalf("mktemp: %v", err)
	}
	path := strings.TrimSpace(out)
	if !strings.HasPrefix(path, root) {
		t.Fatalf("path %q not under root %q", path, root)
	}
	if !strings.Contains(path, "build123") {
		t.Fatalf("template name missing from %q", path)
	}
}
