package testplan

import (
	"strings"

	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

// SQLiInURIPathTest is restricted to endpoints whose raw path
// contains "/{". For each canonical payload, substitutes it as the
// value of every path parameter — query and body parameters keep
// their fuzzed values. Path params are concatenated, not merged via
// get_unique_params, matching the source's one inconsistent call
// site (spec.md §9's third open question).
func (g *Generator) SQLiInURIPathTest(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{500}
	}
	isV3 := spec.Dialect == specparse.DialectOpenAPIv3

	var out []TestDescriptor
	for _, payload := range SQLiPayloads {
		for _, ep := range spec.Endpoints {
			if !strings.Contains(ep.Path, "/{") {
				continue
			}

			requestParams := fuzzParams(ep.RequestParams, isV3)
			bodyParams := filterByIn(requestParams, "body")
			queryParams := filterByIn(requestParams, "query")
			pathParamsInBody := filterByIn(requestParams, "path")

			pathParams := append(append([]specparse.ParameterRecord{}, ep.PathParams...), pathParamsInBody...)
			pathParams = fuzzParams(pathParams, isV3)

			endpointPath := ep.Path
			for _, pp := range pathParams {
				endpointPath = strings.ReplaceAll(endpointPath, "{"+pp.Name+"}", payload)
			}

			out = append(out, TestDescriptor{
				TestName:         "SQLi Test in URI Path with Fuzzed Params",
				URL:              specutil.JoinURIPath(spec.BaseURL, spec.APIBasePath, endpointPath),
				Endpoint:         specutil.JoinURIPath(spec.APIBasePath, endpointPath),
				Method:           strings.ToUpper(ep.HTTPMethod),
				BodyParams:       bodyParams,
				QueryParams:      queryParams,
				PathParams:       pathParams,
				MaliciousPayload: payload,
				SuccessCodes:     successCodes,
				ResponseFilter:   StatusCodeFilter,
				VulnDetails: map[bool]string{
					true:  "Endpoint might be vulnerable to SQli",
					false: "Endpoint is not vulnerable to SQLi",
				},
				Options: g.Options,
			})
		}
	}
	return out
}
