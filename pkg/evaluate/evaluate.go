// Package evaluate applies a Test Descriptor's response filter against
// a captured HTTP response and reports whether the endpoint exhibited
// the described vulnerability. Adapted from pkg/api/diff's
// response-comparison style (plain functions building a small result
// struct) to a single pass/fail judgment instead of a structural diff.
package evaluate

import (
	"fmt"
	"regexp"

	"github.com/ffuf/apiprobe/pkg/testplan"
)

// Response is the minimal shape an executor needs to report back for
// evaluation: status code and raw body, nothing ffuf-specific.
type Response struct {
	StatusCode int
	Body       []byte
}

// Finding is one executed Test Descriptor's verdict.
type Finding struct {
	TestName   string
	Endpoint   string
	Method     string
	Vulnerable bool
	Detail     string
}

// Evaluate judges a captured response against a Test Descriptor's
// ResponseFilter and returns the corresponding Finding.
func Evaluate(td testplan.TestDescriptor, resp *Response) Finding {
	vulnerable := false

	switch td.ResponseFilter {
	case testplan.StatusCodeFilter:
		vulnerable = containsInt(td.SuccessCodes, resp.StatusCode)
	case testplan.BodyRegexFilter:
		vulnerable = matchesBody(td.ResponseMatchRegex, resp.Body)
	}

	return Finding{
		TestName:   td.TestName,
		Endpoint:   td.Endpoint,
		Method:     td.Method,
		Vulnerable: vulnerable,
		Detail:     td.VulnDetails[vulnerable],
	}
}

func containsInt(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

func matchesBody(pattern string, body []byte) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.Match(body)
}

// Summarize renders a slice of Findings as a short human-readable
// report, in the same plain-string-building style as
// ResponseDiff.FormatDiff.
func Summarize(findings []Finding) string {
	var vulnerableCount int
	for _, f := range findings {
		if f.Vulnerable {
			vulnerableCount++
		}
	}

	out := fmt.Sprintf("%d/%d test(s) flagged a vulnerability\n", vulnerableCount, len(findings))
	for _, f := range findings {
		marker := " "
		if f.Vulnerable {
			marker = "!"
		}
		out += fmt.Sprintf("[%s] %s %s %s — %s\n", marker, f.Method, f.Endpoint, f.TestName, f.Detail)
	}
	return out
}
