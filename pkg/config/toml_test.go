package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTOMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apiprobe.toml")
	content := "threads = 25\noutput_format = \"text\"\n\n[headers]\nX-Test = \"1\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewConfig(context.Background(), func() {})
	if err := LoadTOMLOverrides(path, &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Threads != 25 {
		t.Errorf("Threads = %d, want 25", c.Threads)
	}
	if c.OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want text", c.OutputFormat)
	}
	if c.Headers["X-Test"] != "1" {
		t.Errorf("Headers[X-Test] = %q, want 1", c.Headers["X-Test"])
	}
}

func TestLoadTOMLOverridesMissingFile(t *testing.T) {
	c := NewConfig(context.Background(), func() {})
	if err := LoadTOMLOverrides("/nonexistent/apiprobe.toml", &c); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
