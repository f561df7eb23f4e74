package mimetype

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/beltctl/internal/testutil/testlog"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func TestByExtension(t *testing.T) {
	testlog.Start(t)
	if got := ByExtension("report.json"); got != "application/json" {
		t.Fatalf("json: got %q", got)
	}
	if got := ByExtension("blob.noext-ever"); got != Fallback {
		t.Fatalf("unknown ext: got %q", got)
	}
}

func TestDetectByContent(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "image.dat")
	if err := os.WriteFile(path, pngHeader, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Detect(path)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if got != "image/png" {
		t.Fatalf("got %q want image/png", got)
	}
}

func TestDetectFallsBackToExtension(t *testing.T) {
	testlog.Start(t)
	got, err := DetectReader(bytes.NewReader([]byte("{}")), "payload.json")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if got != "application/json" {
		t.Fatalf("got %q want application/json", got)
	}
}

func TestDetectMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := Detect(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
