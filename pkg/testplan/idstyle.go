package testplan

import (
	"fmt"
	"strconv"

	"github.com/ffuf/apiprobe/pkg/specparse"
)

// dominantIDStyle classifies the first path param's fuzzed value, the
// same single-value-per-request assumption the teacher's
// replaceIDInEndpoint made.
func dominantIDStyle(pathParams []specparse.ParameterRecord) IDStyle {
	for _, p := range pathParams {
		return classifyIDStyle(fmt.Sprintf("%v", p.Value))
	}
	return IDStyleUnknown
}

// IDStyle classifies the shape of a path parameter's fuzzed value, so
// a downstream executor can pick a more convincing replacement ID
// (e.g. another numeric ID vs. another UUID) than the generic fuzzed
// value alone would suggest. Adapted from the teacher's
// isNumeric/isUUID helpers, which originally picked a replacement ID
// inline; here they only attach metadata, since the core never makes
// execution-time decisions.
type IDStyle int

const (
	IDStyleUnknown IDStyle = iota
	IDStyleNumeric
	IDStyleUUID
)

func (s IDStyle) String() string {
	switch s {
	case IDStyleNumeric:
		return "numeric"
	case IDStyleUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// classifyIDStyle mirrors pkg/api/security/bola.go's isNumeric/isUUID.
func classifyIDStyle(v string) IDStyle {
	if isUUID(v) {
		return IDStyleUUID
	}
	if isNumeric(v) {
		return IDStyleNumeric
	}
	return IDStyleUnknown
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isUUID(s string) bool {
	count := 0
	for _, c := range s {
		if c == '-' {
			count++
		}
	}
	return count == 4 && len(s) == 36
}
