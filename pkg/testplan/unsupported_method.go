package testplan

import (
	"strings"

	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/specutil"
)

// allHTTPMethods is the full verb universe the unsupported-method
// check compares documented methods against — widened beyond the
// normalizer's own parse filter to include patch, per spec.md §4.3.
var allHTTPMethods = []string{"get", "post", "put", "patch", "delete", "options"}

type endpointAggregate struct {
	methods map[string]bool
	body    []specparse.ParameterRecord
	query   []specparse.ParameterRecord
	path    []specparse.ParameterRecord
}

// CheckUnsupportedHTTPMethods emits one descriptor per (path ×
// restricted method), where restricted = allHTTPMethods minus the
// methods documented for that path.
func (g *Generator) CheckUnsupportedHTTPMethods(spec *specparse.NormalizedSpec, successCodes []int) []TestDescriptor {
	if successCodes == nil {
		successCodes = []int{200, 201, 301, 302}
	}

	fuzzed := g.fuzzRequestParams(spec)

	index := map[string]*endpointAggregate{}
	var order []string
	for _, fe := range fuzzed {
		a, ok := index[fe.Endpoint]
		if !ok {
			a = &endpointAggregate{methods: map[string]bool{}}
			index[fe.Endpoint] = a
			order = append(order, fe.Endpoint)
		}
		a.methods[strings.ToLower(fe.Method)] = true
		a.body = append(a.body, fe.BodyParams...)
		a.query = append(a.query, fe.QueryParams...)
		a.path = append(a.path, fe.PathParams...)
	}

	var out []TestDescriptor
	for _, endpoint := range order {
		a := index[endpoint]
		url := specutil.JoinURIPath(spec.BaseURL, endpoint)

		for _, method := range allHTTPMethods {
			if a.methods[method] {
				continue
			}
			out = append(out, TestDescriptor{
				TestName:         "UnSupported HTTP Method Check",
				URL:              url,
				Endpoint:         endpoint,
				Method:           strings.ToUpper(method),
				BodyParams:       a.body,
				QueryParams:      a.query,
				PathParams:       a.path,
				MaliciousPayload: []interface{}{},
				SuccessCodes:     successCodes,
				ResponseFilter:   StatusCodeFilter,
				VulnDetails: map[bool]string{
					true:  "Endpoint performs HTTP verb which is not documented",
					false: "Endpoint doesn't perform any HTTP verb which is not documented",
				},
				Options: g.Options,
			})
		}
	}
	return out
}
