// Package load reads an OpenAPI/Swagger document from a file or URL
// into the generic map tree specparse.Normalize expects, dispatching
// on file extension / Content-Type the way
// pkg/api/parser.OpenAPIParser.ParseFromFile/ParseFromURL do, but
// decoding YAML with gopkg.in/yaml.v3 instead of treating it as a
// simplified JSON variant.
package load

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadError wraps a failure to read or decode a spec document.
type LoadError struct {
	Message string
}

func (e *LoadError) Error() string { return e.Message }

func newLoadError(format string, args ...interface{}) *LoadError {
	return &LoadError{Message: fmt.Sprintf(format, args...)}
}

// FromFile reads a spec document from disk, dispatching on extension
// and falling back to JSON-then-YAML when the extension is
// unrecognized.
func FromFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError("failed to read spec file: %s", err.Error())
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		if doc, jerr := decodeJSON(data); jerr == nil {
			return doc, nil
		}
		return decodeYAML(data)
	}
}

// FromURL fetches a spec document over HTTP(S), dispatching on the
// response's Content-Type and falling back to JSON-then-YAML when it
// is absent or unrecognized.
func FromURL(specURL string) (map[string]interface{}, string, error) {
	parsed, err := url.Parse(specURL)
	if err != nil {
		return nil, "", newLoadError("invalid spec URL: %s", err.Error())
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(specURL)
	if err != nil {
		return nil, "", newLoadError("failed to fetch spec: %s", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", newLoadError("spec fetch returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", newLoadError("failed to read spec response body: %s", err.Error())
	}

	contentType := resp.Header.Get("Content-Type")
	baseURL := parsed.Scheme + "://" + parsed.Host

	switch {
	case strings.Contains(contentType, "application/json"):
		doc, err := decodeJSON(data)
		return doc, baseURL, err
	case strings.Contains(contentType, "yaml"):
		doc, err := decodeYAML(data)
		return doc, baseURL, err
	default:
		if doc, jerr := decodeJSON(data); jerr == nil {
			return doc, baseURL, nil
		}
		doc, yerr := decodeYAML(data)
		if yerr != nil {
			return nil, "", newLoadError("failed to parse spec as JSON or YAML: %s", yerr.Error())
		}
		return doc, baseURL, nil
	}
}

func decodeJSON(data []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newLoadError("failed to parse spec as JSON: %s", err.Error())
	}
	return doc, nil
}

func decodeYAML(data []byte) (map[string]interface{}, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, newLoadError("failed to parse spec as YAML: %s", err.Error())
	}
	doc, ok := normalizeYAMLTree(raw).(map[string]interface{})
	if !ok {
		return nil, newLoadError("spec document did not decode to a mapping at its root")
	}
	return doc, nil
}

// normalizeYAMLTree recursively converts the map[interface{}]interface{}
// yaml.v3 can produce into map[string]interface{}, so the rest of the
// pipeline only ever deals with one map shape.
func normalizeYAMLTree(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalizeYAMLTree(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalizeYAMLTree(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalizeYAMLTree(val)
		}
		return out
	default:
		return v
	}
}
