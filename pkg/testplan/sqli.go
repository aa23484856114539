package testplan

import "github.com/ffuf/apiprobe/pkg/specparse"

// SQLiFuzzParamsTest injects each canonical SQLi payload into every
// string-typed body and query parameter of every endpoint. Path
// parameters are intentionally left untouched — see DESIGN.md's note
// on spec.md §9's first open question.
func (g *Generator) SQLiFuzzParamsTest(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{500}
	}

	fuzzed := g.fuzzRequestParams(spec)

	var out []TestDescriptor
	for _, payload := range SQLiPayloads {
		for _, fe := range fuzzed {
			out = append(out, TestDescriptor{
				TestName:     "SQLi Test",
				URL:          fe.URL,
				Endpoint:     fe.Endpoint,
				Method:       fe.Method,
				BodyParams:   injectPayload(fe.BodyParams, payload),
				QueryParams:  injectPayload(fe.QueryParams, payload),
				PathParams:   fe.PathParams,
				MaliciousPayload: payload,
				SuccessCodes: successCodes,
				ResponseFilter: StatusCodeFilter,
				VulnDetails: map[bool]string{
					true:  "One or more parameter is vulnerable to SQL Injection Attack",
					false: "Parameters are not vulnerable to SQLi Payload",
				},
				Options: g.Options,
			})
		}
	}
	return out
}
