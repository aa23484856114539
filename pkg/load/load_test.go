package load

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.json")
	if err := os.WriteFile(path, []byte(`{"openapi":"3.0.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["openapi"] != "3.0.0" {
		t.Errorf("got %v, want openapi=3.0.0", doc)
	}
}

func TestFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	content := "openapi: 3.0.0\npaths:\n  /health:\n    get:\n      responses: {}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["openapi"] != "3.0.0" {
		t.Errorf("got %v, want openapi=3.0.0", doc)
	}
	paths, ok := doc["paths"].(map[string]interface{})
	if !ok {
		t.Fatalf("paths = %#v, want map[string]interface{}", doc["paths"])
	}
	if _, ok := paths["/health"]; !ok {
		t.Errorf("paths = %v, want /health key", paths)
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile("/nonexistent/path/spec.json")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFromFileUnknownExtensionFallsBackToJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.txt")
	if err := os.WriteFile(path, []byte(`{"swagger":"2.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["swagger"] != "2.0" {
		t.Errorf("got %v, want swagger=2.0", doc)
	}
}
