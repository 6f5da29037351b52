package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/joshuapare/ppkit/internal/testutil"
)

// resetFlags restores every command flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	strict = false
	setOutput = ""
	setDryRun = false
	applyOutput = ""
	applyDryRun = false
}

// writeExport writes a sample export (optionally edited) to a temp dir.
func writeExport(t *testing.T, edit func(payload []byte)) string {
	t.Helper()
	payload := testutil.Payload()
	if edit != nil {
		edit(payload)
	}
	path := filepath.Join(t.TempDir(), "card.reg")
	if err := os.WriteFile(path, []byte(testutil.RegFile(payload)), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	fnErr := fn()

	w.Close()
	<-done
	os.Stdout = origStdout
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
