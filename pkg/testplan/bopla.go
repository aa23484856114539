package testplan

import (
	"strings"

	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

// injectResponseParams flattens each status code's response schema
// properties into ParameterRecords tagged with that status code, so
// BOPLA can send them as extra body fields.
func injectResponseParams(responses map[string]specparse.ResponseEntry) []specparse.ParameterRecord {
	var out []specparse.ParameterRecord
	for code, entry := range responses {
		props, _ := entry.Schema["properties"].(map[string]interface{})
		for name, raw := range props {
			fieldSchema, _ := raw.(map[string]interface{})
			typ, _ := fieldSchema["type"].(string)
			out = append(out, specparse.ParameterRecord{
				Name:       name,
				In:         "body",
				Type:       typ,
				Schema:     fieldSchema,
				StatusCode: code,
			})
		}
	}
	return out
}

// BOPLAFuzzTest (mass assignment / excessive data exposure) merges
// fuzzed body params with response-derived params, skipping endpoints
// that declare neither body nor query params. Path-param merge order
// is reversed relative to fuzzRequestParams, matching the source's
// bopla_fuzz_test call site.
func (g *Generator) BOPLAFuzzTest(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{200, 201, 301}
	}
	isV3 := spec.Dialect == specparse.DialectOpenAPIv3

	var out []TestDescriptor
	for _, ep := range spec.Endpoints {
		requestParams := fuzzParams(ep.RequestParams, isV3)
		bodyParams := filterByIn(requestParams, "body")
		queryParams := filterByIn(requestParams, "query")
		pathParamsInBody := filterByIn(requestParams, "path")

		if len(bodyParams) == 0 && len(queryParams) == 0 {
			continue
		}

		pathParams := fuzzParams(ep.PathParams, isV3)
		pathParams = specutil.GetUniqueParams(pathParamsInBody, pathParams)

		endpointPath := materializePath(ep.Path, pathParams)

		responseParams := injectResponseParams(ep.ResponseParams)
		bodyParams = append(append([]specparse.ParameterRecord{}, bodyParams...), responseParams...)

		out = append(out, TestDescriptor{
			TestName:         "BOPLA/Mass Assignment Fuzz Test",
			URL:              specutil.JoinURIPath(spec.BaseURL, spec.APIBasePath, endpointPath),
			Endpoint:         specutil.JoinURIPath(spec.APIBasePath, endpointPath),
			Method:           strings.ToUpper(ep.HTTPMethod),
			BodyParams:       bodyParams,
			QueryParams:      queryParams,
			PathParams:       pathParams,
			MaliciousPayload: responseParams,
			SuccessCodes:     successCodes,
			ResponseFilter:   StatusCodeFilter,
			VulnDetails: map[bool]string{
				true:  "Endpoint might be vulnerable to BOPLA/Mass Assignment",
				false: "Endpoint is not vulnerable to BOPLA/Mass Assignment",
			},
			Options: g.Options,
		})
	}
	return out
}
