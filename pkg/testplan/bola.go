package testplan

import (
	"strconv"
	"strings"

	"github.com/ffuf/apiprobe/pkg/fuzz"
	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

// BOLAFuzzPathTest is restricted to endpoints with path parameters.
// Substitutes fuzzer-generated values into the path and issues the
// documented verb.
func (g *Generator) BOLAFuzzPathTest(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{200, 201, 301}
	}
	isV3 := spec.Dialect == specparse.DialectOpenAPIv3

	var out []TestDescriptor
	for _, ep := range spec.Endpoints {
		if !strings.Contains(ep.Path, "/{") {
			continue
		}

		requestParams := fuzzParams(ep.RequestParams, isV3)
		bodyParams := filterByIn(requestParams, "body")
		queryParams := filterByIn(requestParams, "query")
		pathParamsInBody := filterByIn(requestParams, "path")

		pathParams := fuzzParams(ep.PathParams, isV3)
		pathParams = specutil.GetUniqueParams(pathParamsInBody, pathParams)

		endpointPath := materializePath(ep.Path, pathParams)

		opts := g.Options
		opts.IDStyle = dominantIDStyle(pathParams)

		out = append(out, TestDescriptor{
			TestName:         "BOLA Path Test with Fuzzed Params",
			URL:              specutil.JoinURIPath(spec.BaseURL, spec.APIBasePath, endpointPath),
			Endpoint:         specutil.JoinURIPath(spec.APIBasePath, endpointPath),
			Method:           strings.ToUpper(ep.HTTPMethod),
			BodyParams:       bodyParams,
			QueryParams:      queryParams,
			PathParams:       pathParams,
			MaliciousPayload: pathParams,
			SuccessCodes:     successCodes,
			ResponseFilter:   StatusCodeFilter,
			VulnDetails: map[bool]string{
				true:  "Endpoint might be vulnerable to BOLA",
				false: "Endpoint is not vulnerable to BOLA",
			},
			Options: opts,
		})
	}
	return out
}

// BOLAFuzzTrailingSlashTest runs against every endpoint (with or
// without path params), then appends "/<random integer>" to the
// materialized URL.
func (g *Generator) BOLAFuzzTrailingSlashTest(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{200, 201, 301}
	}

	fuzzed := g.fuzzRequestParams(spec)

	var out []TestDescriptor
	for _, fe := range fuzzed {
		payload := fuzz.GenerateRandomInt()
		url := fe.URL
		if strings.HasSuffix(url, "/") {
			url += strconv.Itoa(payload)
		} else {
			url += "/" + strconv.Itoa(payload)
		}

		opts := g.Options
		opts.IDStyle = IDStyleNumeric

		out = append(out, TestDescriptor{
			TestName:         "BOLA Path Trailing Slash Test",
			URL:              url,
			Endpoint:         fe.Endpoint,
			Method:           fe.Method,
			BodyParams:       fe.BodyParams,
			QueryParams:      fe.QueryParams,
			PathParams:       fe.PathParams,
			MaliciousPayload: payload,
			SuccessCodes:     successCodes,
			ResponseFilter:   StatusCodeFilter,
			VulnDetails: map[bool]string{
				true:  "Endpoint might be vulnerable to BOLA",
				false: "Endpoint might not vulnerable to BOLA",
			},
			Options: opts,
		})
	}
	return out
}
