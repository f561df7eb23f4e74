// Package fields splits delimited lines into ordered string fields.
// No dynamic evaluation, no quoting rules: the delimiter is literal.
package fields

import "strings"

// Split breaks line into ordered fields on delimiter. An empty delimiter
// splits on runs of whitespace, matching shell word-splitting; otherwise
// empty fields between consecutive delimiters are preserved. An empty
// line yields no fields.
func Split(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	if line == "" {
		return nil
	}
	return strings.Split(line, delimiter)
}

// Join rejoins fields with delimiter. For a non-empty delimiter it is
// the inverse of Split.
func Join(parts []string, delimiter string) string {
	return strings.Join(parts, delimiter)
}

// Index returns field i (zero-based), or empty when i is out of range.
func Index(parts []string, i int) string {
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}
