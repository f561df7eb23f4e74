package tools

import "os/exec"

// Exists reports whether name resolves to an executable on PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Path returns the resolved executable path for name, or empty when the
// command is absent.
func Path(name string) string {
	p, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return p
}
