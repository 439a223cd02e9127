package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestTerminalWriter(t *testing.T) {
	if terminalWriter(&bytes.Buffer{}) {
		t.Errorf("in-memory writer reported as terminal")
	}
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if terminalWriter(f) {
		t.Errorf("regular file reported as terminal")
	}
}
