package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ffuf/apiprobe/pkg/evaluate"
	"github.com/ffuf/apiprobe/pkg/testplan"
)

// httpExecutor is the downstream dispatcher spec.md keeps deliberately
// out of the compiler's core: it turns a Test Descriptor into a real
// HTTP request and reports back a captured Response. Adapted from
// pkg/api/client.APIClient.Execute's transport setup, trimmed to what
// a single probing request needs.
type httpExecutor struct {
	client *http.Client
}

func newHTTPExecutor(timeoutSeconds int) *httpExecutor {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	return &httpExecutor{
		client: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Dispatch builds the request described by td (path params are already
// materialized into td.URL; query params are encoded onto it here; body
// params are marshaled as a JSON object) and returns the captured
// response.
func (e *httpExecutor) Dispatch(ctx context.Context, td testplan.TestDescriptor) (*evaluate.Response, error) {
	reqURL := td.URL
	if len(td.QueryParams) > 0 {
		q := url.Values{}
		for _, p := range td.QueryParams {
			q.Set(p.Name, fmt.Sprintf("%v", p.Value))
		}
		reqURL += "?" + q.Encode()
	}

	var bodyReader io.Reader
	if len(td.BodyParams) > 0 {
		body := map[string]interface{}{}
		for _, p := range td.BodyParams {
			body[p.Name] = p.Value
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, td.Method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, */*")
	for k, v := range td.Options.Headers {
		req.Header.Set(k, v)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dispatching request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &evaluate.Response{StatusCode: resp.StatusCode, Body: data}, nil
}
