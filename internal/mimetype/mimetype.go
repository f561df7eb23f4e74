// Package mimetype resolves MIME types for belt scripts, by extension or
// by sniffing file content.
package mimetype

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
)

// Fallback is returned when neither the content nor the extension is
// recognized.
const Fallback = "application/octet-stream"

// sniffLen covers every magic-number matcher filetype ships.
const sniffLen = 262

// ByExtension resolves the MIME type from the path extension alone.
func ByExtension(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return Fallback
}

// Detect sniffs the file's leading bytes; unknown content falls back to
// the extension table.
func Detect(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("mimetype: open %s: %w", path, err)
	}
	defer f.Close()
	return detect(f, path)
}

// DetectReader sniffs r directly; name is only consulted for the
// extension fallback and may be empty.
func DetectReader(r io.Reader, name string) (string, error) {
	return detect(r, name)
}

func detect(r io.Reader, name string) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("mimetype: read head: %w", err)
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return "", fmt.Errorf("mimetype: match: %w", err)
	}
	if kind == filetype.Unknown {
		return ByExtension(name), nil
	}
	return kind.MIME.Value, nil
}
