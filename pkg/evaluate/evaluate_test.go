package evaluate

import (
	"testing"

	"github.com/ffuf/apiprobe/pkg/testplan"
)

func TestEvaluateStatusCodeFilter(t *testing.T) {
	td := testplan.TestDescriptor{
		ResponseFilter: testplan.StatusCodeFilter,
		SuccessCodes:   []int{200, 201},
		VulnDetails:    map[bool]string{true: "vulnerable", false: "not vulnerable"},
	}

	f := Evaluate(td, &Response{StatusCode: 200})
	if !f.Vulnerable {
		t.Error("expected 200 to match SuccessCodes and be flagged vulnerable")
	}

	f = Evaluate(td, &Response{StatusCode: 404})
	if f.Vulnerable {
		t.Error("expected 404 to not match SuccessCodes")
	}
}

func TestEvaluateBodyRegexFilter(t *testing.T) {
	td := testplan.TestDescriptor{
		ResponseFilter:     testplan.BodyRegexFilter,
		ResponseMatchRegex: `root:.*`,
		VulnDetails:        map[bool]string{true: "vulnerable", false: "not vulnerable"},
	}

	f := Evaluate(td, &Response{Body: []byte("root:x:0:0:root:/root:/bin/bash")})
	if !f.Vulnerable {
		t.Error("expected body match to flag vulnerable")
	}

	f = Evaluate(td, &Response{Body: []byte("no match here")})
	if f.Vulnerable {
		t.Error("expected non-matching body to not be flagged")
	}
}

func TestEvaluateInvalidRegexNeverPanics(t *testing.T) {
	td := testplan.TestDescriptor{
		ResponseFilter:     testplan.BodyRegexFilter,
		ResponseMatchRegex: `(unterminated`,
	}
	f := Evaluate(td, &Response{Body: []byte("anything")})
	if f.Vulnerable {
		t.Error("an invalid pattern should never be reported as a match")
	}
}
