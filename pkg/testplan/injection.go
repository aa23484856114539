package testplan

import (
	"strings"

	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

// generateInjectionTests is the shared driver behind the OS-command,
// XSS, and SSTI checks: identical skeleton, different payload catalog
// and labels. Endpoints with neither body nor query params are
// skipped — there is nowhere to place the payload. Findings are
// evaluated against the response body, never the status code.
func (g *Generator) generateInjectionTests(spec *specparse.NormalizedSpec, testName string, payloads []InjectionPayload, vulnTrue, vulnFalse string) []TestDescriptor {
	isV3 := spec.Dialect == specparse.DialectOpenAPIv3

	var out []TestDescriptor
	for _, payload := range payloads {
		for _, ep := range spec.Endpoints {
			requestParams := fuzzParams(ep.RequestParams, isV3)
			bodyParams := filterByIn(requestParams, "body")
			queryParams := filterByIn(requestParams, "query")
			pathParamsInBody := filterByIn(requestParams, "path")

			if len(bodyParams) == 0 && len(queryParams) == 0 {
				continue
			}

			pathParams := fuzzParams(ep.PathParams, isV3)
			pathParams = specutil.GetUniqueParams(pathParams, pathParamsInBody)

			endpointPath := materializePath(ep.Path, pathParams)

			out = append(out, TestDescriptor{
				TestName:           testName,
				URL:                specutil.JoinURIPath(spec.BaseURL, spec.APIBasePath, endpointPath),
				Endpoint:           specutil.JoinURIPath(spec.APIBasePath, endpointPath),
				Method:             strings.ToUpper(ep.HTTPMethod),
				BodyParams:         injectPayload(bodyParams, payload.RequestPayload),
				QueryParams:        injectPayload(queryParams, payload.RequestPayload),
				PathParams:         pathParams,
				MaliciousPayload:   payload.RequestPayload,
				ResponseFilter:     BodyRegexFilter,
				ResponseMatchRegex: payload.ResponseMatchRegex,
				VulnDetails: map[bool]string{
					true:  vulnTrue,
					false: vulnFalse,
				},
				Options: g.Options,
			})
		}
	}
	return out
}

// OSCommandInjectionTest fuzzes every string-typed body/query param
// with the canonical OS-command payload catalog.
func (g *Generator) OSCommandInjectionTest(spec *specparse.NormalizedSpec) []TestDescriptor {
	return g.generateInjectionTests(spec, "OS Command Injection Check",
		OSCommandPayloads,
		"Endpoint might be vulnerable to OS Command Injection",
		"Endpoint is not vulnerable to OS Command Injection")
}

// XSSHTMLInjectionTest fuzzes every string-typed body/query param
// with the canonical XSS/HTML injection payload catalog.
func (g *Generator) XSSHTMLInjectionTest(spec *specparse.NormalizedSpec) []TestDescriptor {
	return g.generateInjectionTests(spec, "XSS/HTML Injection Check",
		XSSPayloads,
		"Endpoint might be vulnerable to XSS/HTML Injection",
		"Endpoint is not vulnerable to XSS/HTML Injection")
}

// SSTIInjectionTest fuzzes every string-typed body/query param with
// the canonical server-side template injection payload catalog.
func (g *Generator) SSTIInjectionTest(spec *specparse.NormalizedSpec) []TestDescriptor {
	return g.generateInjectionTests(spec, "Server Side Template Injection (SSTI) Check",
		SSTIPayloads,
		"Endpoint might be vulnerable to SSTI",
		"Endpoint is not vulnerable to SSTI")
}
