package testplan

import (
	"fmt"
	"strings"

	"github.com/ffuf/apiprobe/pkg/fuzz"
	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

func fuzzParams(params []specparse.ParameterRecord, isV3 bool) []specparse.ParameterRecord {
	return fuzz.FillParams(params, isV3)
}

// filterByIn returns the subset of params whose In matches.
func filterByIn(params []specparse.ParameterRecord, in string) []specparse.ParameterRecord {
	var out []specparse.ParameterRecord
	for _, p := range params {
		if p.In == in {
			out = append(out, p)
		}
	}
	return out
}

// materializePath substitutes every "{name}" placeholder with the
// matching parameter's fuzzed value. Placeholders without a matching
// parameter are left intact (spec.md §3 invariant).
func materializePath(path string, pathParams []specparse.ParameterRecord) string {
	for _, p := range pathParams {
		path = strings.ReplaceAll(path, "{"+p.Name+"}", valueToString(p.Value))
	}
	return path
}

func valueToString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// injectPayload deep-copies params and overwrites every string-typed
// value with payload, per spec.md §4.3/§9 ("deep copy on injection").
func injectPayload(params []specparse.ParameterRecord, payload interface{}) []specparse.ParameterRecord {
	out := make([]specparse.ParameterRecord, len(params))
	copy(out, params)
	for i := range out {
		if out[i].Type == "string" {
			out[i].Value = payload
		}
	}
	return out
}

// fuzzRequestParams is the shared skeleton: fuzz request_params and
// path_params, partition by `in`, merge path params with
// get_unique_params, substitute the path template, and materialize
// the absolute URL. Mirrors __fuzz_request_params (ordering
// (path_params, path_params_in_body), see DESIGN.md).
func (g *Generator) fuzzRequestParams(spec *specparse.NormalizedSpec) []fuzzedEndpoint {
	isV3 := spec.Dialect == specparse.DialectOpenAPIv3

	out := make([]fuzzedEndpoint, 0, len(spec.Endpoints))
	for _, ep := range spec.Endpoints {
		fe := g.fuzzOne(spec, ep, isV3)
		out = append(out, fe)
	}
	return out
}

func (g *Generator) fuzzOne(spec *specparse.NormalizedSpec, ep specparse.EndpointRecord, isV3 bool) fuzzedEndpoint {
	requestParams := fuzzParams(ep.RequestParams, isV3)
	bodyParams := filterByIn(requestParams, "body")
	queryParams := filterByIn(requestParams, "query")
	pathParamsInBody := filterByIn(requestParams, "path")

	pathParams := fuzzParams(ep.PathParams, isV3)
	pathParams = specutil.GetUniqueParams(pathParams, pathParamsInBody)

	endpointPath := materializePath(ep.Path, pathParams)

	return fuzzedEndpoint{
		URL:         specutil.JoinURIPath(spec.BaseURL, spec.APIBasePath, endpointPath),
		Endpoint:    specutil.JoinURIPath(spec.APIBasePath, endpointPath),
		Method:      strings.ToUpper(ep.HTTPMethod),
		BodyParams:  bodyParams,
		QueryParams: queryParams,
		PathParams:  pathParams,
		Security:    ep.Security,
	}
}
