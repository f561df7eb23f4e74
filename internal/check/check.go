// Package check provides ad-hoc assertion helpers for script testing.
// Each helper evaluates one condition and reports a structured result;
// nothing panics and nothing exits, callers decide what failure means.
package check

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Result is the outcome of one assertion.
type Result struct {
	Name    string
	Passed  bool
	Message string
}

func pass(name, format string, args ...any) Result {
	return Result{Name: name, Passed: true, Message: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...any) Result {
	return Result{Name: name, Passed: false, Message: fmt.Sprintf(format, args...)}
}

// Equal checks got against expected, byte for byte.
func Equal(name, expected, got string) Result {
	if got == expected {
		return pass(name, "equal to %q", got)
	}
	return fail(name, "expected %q, got %q", expected, got)
}

// NotEmpty checks that got has content beyond whitespace.
func NotEmpty(name, got string) Result {
	if strings.TrimSpace(got) != "" {
		return pass(name, "non-empty")
	}
	return fail(name, "expected non-empty value")
}

// Contains checks that haystack contains needle.
func Contains(name, haystack, needle string) Result {
	if strings.Contains(haystack, needle) {
		return pass(name, "contains %q", needle)
	}
	return fail(name, "expected %q to contain %q", haystack, needle)
}

// Matches checks got against a regular expression. A pattern that does
// not compile is itself a failed assertion, never a panic.
func Matches(name, pattern, got string) Result {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fail(name, "bad pattern %q: %v", pattern, err)
	}
	if re.MatchString(got) {
		return pass(name, "matches %q", pattern)
	}
	return fail(name, "expected %q to match %q", got, pattern)
}

// FileExists checks that path names an existing filesystem entry.
func FileExists(name, path string) Result {
	if _, err := os.Stat(path); err == nil {
		return pass(name, "%s exists", path)
	}
	return fail(name, "%s does not exist", path)
}

// Summarize tallies results and reports whether every assertion passed.
func Summarize(results []Result) (passed, failed int, ok bool) {
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed, failed == 0
}
