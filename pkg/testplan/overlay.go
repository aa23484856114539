package testplan

import (
	"strings"

	"github.com/ffuf/apiprobe/pkg/specparse"
)

// UserData records one authenticated actor's own resource identifiers
// and credentials, captured from a prior live run against the target.
type UserData struct {
	PathParams  map[string]interface{}
	BodyParams  map[string]interface{}
	QueryParams map[string]interface{}
	Options     ExecutionOptions
}

// overlayParams returns a copy of params with any value present in
// overlay substituted in by name, leaving unmatched params at their
// fuzzed value.
func overlayParams(params []specparse.ParameterRecord, overlay map[string]interface{}) []specparse.ParameterRecord {
	out := make([]specparse.ParameterRecord, len(params))
	copy(out, params)
	for i := range out {
		if v, ok := overlay[out[i].Name]; ok {
			out[i].Value = v
		}
	}
	return out
}

// overlayForActor overlays one actor's own params and credentials onto
// an already-generated descriptor, re-materializing URL/Endpoint so a
// substituted path param is reflected in both.
func overlayForActor(td TestDescriptor, actor UserData) TestDescriptor {
	out := td

	url := out.URL
	endpoint := out.Endpoint
	for _, p := range out.PathParams {
		if v, ok := actor.PathParams[p.Name]; ok {
			old := valueToString(p.Value)
			url = strings.ReplaceAll(url, old, valueToString(v))
			endpoint = strings.ReplaceAll(endpoint, old, valueToString(v))
		}
	}
	out.URL = url
	out.Endpoint = endpoint

	out.PathParams = overlayParams(out.PathParams, actor.PathParams)
	out.BodyParams = overlayParams(out.BodyParams, actor.BodyParams)
	out.QueryParams = overlayParams(out.QueryParams, actor.QueryParams)
	out.Options = actor.Options

	return out
}

// Overlay runs delegate against spec, then overlays actor1's and/or
// actor2's own captured params and credentials onto the resulting
// descriptors in place of delegate's synthetic fuzzed values, per
// testForActor1/testForActor2. This is the generic higher-order
// operation the source's test_with_user_data implements: it is
// delegate-agnostic — any generator operation's output can be
// re-dispatched with a specific actor's real recorded identifiers,
// not only a BOLA-shaped cross-access probe.
func (g *Generator) Overlay(spec *specparse.NormalizedSpec, delegate func(*specparse.NormalizedSpec) []TestDescriptor, actor1, actor2 UserData, testForActor1, testForActor2 bool) []TestDescriptor {
	tests := delegate(spec)

	var out []TestDescriptor
	if testForActor1 {
		for _, td := range tests {
			out = append(out, overlayForActor(td, actor1))
		}
	}
	if testForActor2 {
		for _, td := range tests {
			out = append(out, overlayForActor(td, actor2))
		}
	}
	return out
}
