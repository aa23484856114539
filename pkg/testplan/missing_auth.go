package testplan

import (
	"strings"

	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

// hasRealSecurity reports whether an endpoint declares a non-trivial
// security requirement. An empty list, or a list containing only an
// empty requirement object, both mean "no real auth enforced" and are
// excluded.
func hasRealSecurity(security []map[string]interface{}) bool {
	if len(security) == 0 {
		return false
	}
	if len(security) == 1 && len(security[0]) == 0 {
		return false
	}
	return true
}

// stripAuthHeaders returns a copy of opts with the documented
// authentication headers removed, so the request is dispatched
// unauthenticated.
func stripAuthHeaders(opts ExecutionOptions) ExecutionOptions {
	headers := map[string]string{}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	for _, name := range StrippedAuthHeaders {
		delete(headers, name)
	}
	return ExecutionOptions{Headers: headers}
}

// MissingAuthFuzzTest is restricted to endpoints that declare a real
// security requirement, then dispatches the request with the
// authentication headers stripped.
func (g *Generator) MissingAuthFuzzTest(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{200, 201, 301}
	}
	isV3 := spec.Dialect == specparse.DialectOpenAPIv3

	unauthOptions := stripAuthHeaders(g.Options)

	var out []TestDescriptor
	for _, ep := range spec.Endpoints {
		if !hasRealSecurity(ep.Security) {
			continue
		}

		requestParams := fuzzParams(ep.RequestParams, isV3)
		bodyParams := filterByIn(requestParams, "body")
		queryParams := filterByIn(requestParams, "query")
		pathParamsInBody := filterByIn(requestParams, "path")

		pathParams := fuzzParams(ep.PathParams, isV3)
		pathParams = specutil.GetUniqueParams(pathParamsInBody, pathParams)

		endpointPath := materializePath(ep.Path, pathParams)

		out = append(out, TestDescriptor{
			TestName:         "Missing Authentication Check",
			URL:              specutil.JoinURIPath(spec.BaseURL, spec.APIBasePath, endpointPath),
			Endpoint:         specutil.JoinURIPath(spec.APIBasePath, endpointPath),
			Method:           strings.ToUpper(ep.HTTPMethod),
			BodyParams:       bodyParams,
			QueryParams:      queryParams,
			PathParams:       pathParams,
			MaliciousPayload: []interface{}{},
			SuccessCodes:     successCodes,
			ResponseFilter:   StatusCodeFilter,
			VulnDetails: map[bool]string{
				true:  "Endpoint might not enforce authentication",
				false: "Endpoint enforces authentication",
			},
			Options: unauthOptions,
		})
	}
	return out
}
