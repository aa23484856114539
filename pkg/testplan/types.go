// Package testplan consumes Endpoint Records and emits Test
// Descriptors: one generator operation per vulnerability class,
// sharing three private helpers (parameter fuzzer, payload injector,
// path-template materializer).
package testplan

import "github.com/ffuf/apiprobe/pkg/specparse"

// ResponseFilter is a closed, two-valued tagged variant — never a
// stringly-typed field, per spec.md §9.
type ResponseFilter int

const (
	StatusCodeFilter ResponseFilter = iota
	BodyRegexFilter
)

func (f ResponseFilter) String() string {
	switch f {
	case StatusCodeFilter:
		return "STATUS_CODE_FILTER"
	case BodyRegexFilter:
		return "BODY_REGEX_FILTER"
	default:
		return "UNKNOWN_FILTER"
	}
}

// ExecutionOptions replaces the source implementation's opaque
// args/kwargs passthrough (spec.md §9 design note) with a typed
// structure. Headers is the only field the core itself inspects
// (missing-auth strips two names from it).
type ExecutionOptions struct {
	Headers map[string]string
	// IDStyle classifies the shape of the path parameter value this
	// descriptor's request carries, when one is present. Optional
	// metadata for a downstream executor; the generator itself never
	// branches on it.
	IDStyle IDStyle
}

// TestDescriptor is the unit of output: a fully materialized request
// plan plus a post-test evaluation rule.
type TestDescriptor struct {
	TestName           string
	URL                string
	Endpoint           string
	Method             string
	BodyParams         []specparse.ParameterRecord
	QueryParams        []specparse.ParameterRecord
	PathParams         []specparse.ParameterRecord
	MaliciousPayload   interface{}
	SuccessCodes       []int
	ResponseFilter     ResponseFilter
	ResponseMatchRegex string
	VulnDetails        map[bool]string
	Options            ExecutionOptions
}

// Generator is the stateless Test Plan Generator. Options carries the
// default per-call headers threaded into every emitted descriptor.
type Generator struct {
	Options ExecutionOptions
}

// NewGenerator constructs a Generator with the given default options.
func NewGenerator(opts ExecutionOptions) *Generator {
	return &Generator{Options: opts}
}

// fuzzedEndpoint is the intermediate shape shared by every operation
// that needs a plain fuzzed-and-materialized endpoint before applying
// its own payload logic.
type fuzzedEndpoint struct {
	URL         string
	Endpoint    string
	Method      string
	BodyParams  []specparse.ParameterRecord
	QueryParams []specparse.ParameterRecord
	PathParams  []specparse.ParameterRecord
	Security    []map[string]interface{}
}
