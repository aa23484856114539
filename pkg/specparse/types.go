// Package specparse normalizes an OpenAPI v3 or Swagger v2 document
// (already decoded into a generic tree of maps, slices, and scalars)
// into a flat sequence of Endpoint Records.
package specparse

// Dialect identifies which API description format a document follows.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectOpenAPIv3
	DialectSwaggerV2
)

func (d Dialect) String() string {
	switch d {
	case DialectOpenAPIv3:
		return "openapi3"
	case DialectSwaggerV2:
		return "swagger2"
	default:
		return "unknown"
	}
}

// ServerDescriptor is derived from a declared server URL.
type ServerDescriptor struct {
	Scheme   string
	Host     string
	Port     int
	BasePath string
}

// ParameterRecord describes one declared (or synthesized) request or
// response parameter. Value is left nil until a fuzzer fills it.
type ParameterRecord struct {
	Name        string
	In          string // body, query, path, header, formData, cookie
	Type        string // string, integer, number, boolean, array, object, or ""
	Required    bool
	Description string
	Schema      map[string]interface{}
	Value       interface{}
	StatusCode  string // set only for BOPLA-synthesized response-derived params
}

// ParamName satisfies specutil.NamedParam so ParameterRecord slices
// can be deduplicated by get_unique_params.
func (p ParameterRecord) ParamName() string {
	return p.Name
}

// Clone returns a deep-enough copy for injection paths: the Schema map
// is shared (never mutated after normalization) but Value is a plain
// assignment, safe because the fuzzer/injector only ever overwrites it
// wholesale, never in place.
func (p ParameterRecord) Clone() ParameterRecord {
	return p
}

// ResponseEntry is one status code's resolved response object.
type ResponseEntry struct {
	Schema map[string]interface{}
}

// EndpointRecord is the normalized representation of one (path, method) pair.
type EndpointRecord struct {
	Path           string
	HTTPMethod     string // lowercase: get, put, post, delete, options
	RequestParams  []ParameterRecord
	PathParams     []ParameterRecord
	BodyParams     []ParameterRecord
	ResponseParams map[string]ResponseEntry
	Security       []map[string]interface{}
}

// NormalizedSpec is the output of the Spec Normalizer.
type NormalizedSpec struct {
	Dialect         Dialect
	Servers         []ServerDescriptor
	BaseURL         string // scheme://host:port
	APIBasePath     string
	SecuritySchemes map[string]interface{}
	Endpoints       []EndpointRecord
}

// recognizedMethods is the verb filter applied during parsing. patch is
// intentionally absent here — see DESIGN.md and spec.md §9.
var recognizedMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true, "options": true,
}
