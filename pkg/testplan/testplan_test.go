package testplan

import (
	"strings"
	"testing"

	"github.com/ffuf/apiprobe/pkg/specparse"
)

func sampleSpec() *specparse.NormalizedSpec {
	return &specparse.NormalizedSpec{
		Dialect:     specparse.DialectOpenAPIv3,
		BaseURL:     "https://api.example.com",
		APIBasePath: "/v1",
		Endpoints: []specparse.EndpointRecord{
			{
				Path:       "/pets/{petId}",
				HTTPMethod: "get",
				PathParams: []specparse.ParameterRecord{
					{Name: "petId", In: "path", Type: "string"},
				},
				RequestParams: []specparse.ParameterRecord{
					{Name: "name", In: "query", Type: "string"},
				},
				Security: []map[string]interface{}{
					{"apiKeyAuth": []interface{}{}},
				},
			},
			{
				Path:       "/health",
				HTTPMethod: "get",
			},
		},
	}
}

func TestCheckUnsupportedHTTPMethods(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.CheckUnsupportedHTTPMethods(sampleSpec(), nil)
	if len(out) == 0 {
		t.Fatal("expected at least one unsupported-method descriptor")
	}
	for _, td := range out {
		if td.Method == "GET" {
			t.Errorf("GET should never appear as an unsupported method, endpoint %s", td.Endpoint)
		}
		if td.ResponseFilter != StatusCodeFilter {
			t.Errorf("ResponseFilter = %v, want StatusCodeFilter", td.ResponseFilter)
		}
	}
}

func TestSQLiFuzzParamsTestInjectsEveryPayload(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.SQLiFuzzParamsTest(sampleSpec(), nil)

	wantCount := len(SQLiPayloads) * 2
	if len(out) != wantCount {
		t.Fatalf("got %d descriptors, want %d (one per payload per endpoint)", len(out), wantCount)
	}
	for _, td := range out {
		if td.SuccessCodes[0] != 500 {
			t.Errorf("SuccessCodes = %v, want default [500]", td.SuccessCodes)
		}
	}
}

func TestSQLiInURIPathTestOnlyHitsPathParamEndpoints(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.SQLiInURIPathTest(sampleSpec(), nil)
	for _, td := range out {
		if strings.Contains(td.Endpoint, "/health") {
			t.Errorf("health endpoint (no path params) should have been skipped: %+v", td)
		}
	}
	if len(out) != len(SQLiPayloads) {
		t.Fatalf("got %d descriptors, want %d (one per payload, single path-param endpoint)", len(out), len(SQLiPayloads))
	}
}

func TestBOLAFuzzPathTestMaterializesPath(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.BOLAFuzzPathTest(sampleSpec(), nil)
	if len(out) != 1 {
		t.Fatalf("got %d descriptors, want 1", len(out))
	}
	if strings.Contains(out[0].URL, "{petId}") {
		t.Errorf("URL still contains unmaterialized placeholder: %s", out[0].URL)
	}
}

func TestBOLAFuzzTrailingSlashAppendsInteger(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.BOLAFuzzTrailingSlashTest(sampleSpec(), nil)
	if len(out) != 2 {
		t.Fatalf("got %d descriptors, want 2 (one per endpoint)", len(out))
	}
	for _, td := range out {
		if _, ok := td.MaliciousPayload.(int); !ok {
			t.Errorf("MaliciousPayload = %#v, want int", td.MaliciousPayload)
		}
	}
}

func TestBOPLASkipsEndpointsWithNoBodyOrQueryParams(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.BOPLAFuzzTest(sampleSpec(), nil)
	for _, td := range out {
		if strings.Contains(td.Endpoint, "/health") {
			t.Errorf("/health has neither body nor query params and should be skipped")
		}
	}
}

func TestMissingAuthFuzzTestOnlyHitsSecuredEndpoints(t *testing.T) {
	g := NewGenerator(ExecutionOptions{Headers: map[string]string{"Authorization": "Bearer x", "X-Api-Key": "k"}})
	out := g.MissingAuthFuzzTest(sampleSpec(), nil)
	if len(out) != 1 {
		t.Fatalf("got %d descriptors, want 1 (only /pets/{petId} declares security)", len(out))
	}
	if _, ok := out[0].Options.Headers["Authorization"]; ok {
		t.Error("Authorization header should have been stripped")
	}
	if _, ok := out[0].Options.Headers["X-Api-Key"]; ok {
		t.Error("X-Api-Key header should have been stripped")
	}
}

func TestHasRealSecurity(t *testing.T) {
	cases := []struct {
		security []map[string]interface{}
		want     bool
	}{
		{nil, false},
		{[]map[string]interface{}{}, false},
		{[]map[string]interface{}{{}}, false},
		{[]map[string]interface{}{{"apiKeyAuth": []interface{}{}}}, true},
	}
	for _, c := range cases {
		if got := hasRealSecurity(c.security); got != c.want {
			t.Errorf("hasRealSecurity(%v) = %v, want %v", c.security, got, c.want)
		}
	}
}

func TestInjectionTestsSkipEndpointsWithNoBodyOrQueryParams(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	spec := sampleSpec()

	for _, fn := range []func(*specparse.NormalizedSpec) []TestDescriptor{
		g.OSCommandInjectionTest, g.XSSHTMLInjectionTest, g.SSTIInjectionTest,
	} {
		out := fn(spec)
		for _, td := range out {
			if strings.Contains(td.Endpoint, "/health") {
				t.Errorf("/health has no body/query params, should have been skipped")
			}
			if td.ResponseFilter != BodyRegexFilter {
				t.Errorf("ResponseFilter = %v, want BodyRegexFilter", td.ResponseFilter)
			}
		}
	}
}

func TestSSTIInjectionTestCoversEveryPayload(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	out := g.SSTIInjectionTest(sampleSpec())
	if len(out) != len(SSTIPayloads) {
		t.Fatalf("got %d descriptors, want %d (one per payload, one eligible endpoint)", len(out), len(SSTIPayloads))
	}
}

func TestOverlayAppliesRequestedActorsOntoDelegateOutput(t *testing.T) {
	g := NewGenerator(ExecutionOptions{})
	spec := sampleSpec()
	delegateCount := len(g.BOLAFuzzPathTest(spec, nil))

	actor1 := UserData{
		PathParams: map[string]interface{}{"petId": "actor1-pet"},
		Options:    ExecutionOptions{Headers: map[string]string{"Authorization": "actor1-token"}},
	}
	actor2 := UserData{
		PathParams: map[string]interface{}{"petId": "actor2-pet"},
		Options:    ExecutionOptions{Headers: map[string]string{"Authorization": "actor2-token"}},
	}
	delegate := func(spec *specparse.NormalizedSpec) []TestDescriptor {
		return g.BOLAFuzzPathTest(spec, nil)
	}

	both := g.Overlay(spec, delegate, actor1, actor2, true, true)
	if len(both) != 2*delegateCount {
		t.Fatalf("got %d descriptors with both flags set, want %d (one set per actor)", len(both), 2*delegateCount)
	}

	onlyActor2 := g.Overlay(spec, delegate, actor1, actor2, false, true)
	if len(onlyActor2) != delegateCount {
		t.Fatalf("got %d descriptors with only testForActor2, want %d", len(onlyActor2), delegateCount)
	}
	for _, td := range onlyActor2 {
		if !strings.Contains(td.URL, "actor2-pet") {
			t.Errorf("URL = %q, want actor2's petId substituted in", td.URL)
		}
		if td.Options.Headers["Authorization"] != "actor2-token" {
			t.Errorf("Options = %+v, want actor2's credentials", td.Options)
		}
	}

	onlyActor1 := g.Overlay(spec, delegate, actor1, actor2, true, false)
	for _, td := range onlyActor1 {
		if !strings.Contains(td.URL, "actor1-pet") {
			t.Errorf("URL = %q, want actor1's petId substituted in", td.URL)
		}
		if td.Options.Headers["Authorization"] != "actor1-token" {
			t.Errorf("Options = %+v, want actor1's credentials", td.Options)
		}
	}
}
