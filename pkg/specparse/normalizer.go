package specparse

import (
	"strconv"
	"strings"

	"github.com/ffuf/apiprobe/pkg/specutil"
)

// Normalize detects the document's dialect and produces a
// NormalizedSpec with a flat sequence of Endpoint Records. doc is
// already-decoded generic JSON/YAML tree — loading a file or URL into
// this shape is the caller's job (see pkg/load).
func Normalize(doc map[string]interface{}) (*NormalizedSpec, error) {
	dialect, err := detectDialect(doc)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectOpenAPIv3:
		return normalizeV3(doc)
	case DialectSwaggerV2:
		return normalizeV2(doc)
	default:
		return nil, NewParseError(DialectUnrecognized, "document is neither OpenAPI v3 nor Swagger v2")
	}
}

func detectDialect(doc map[string]interface{}) (Dialect, error) {
	if v, ok := doc["openapi"].(string); ok && strings.HasPrefix(v, "3.") {
		return DialectOpenAPIv3, nil
	}
	if v, ok := doc["swagger"].(string); ok && strings.HasPrefix(v, "2.") {
		return DialectSwaggerV2, nil
	}
	return DialectUnknown, NewParseError(DialectUnrecognized, "missing a top-level `openapi: 3.x` or `swagger: 2.x` field")
}

func normalizeV3(doc map[string]interface{}) (*NormalizedSpec, error) {
	serversRaw, _ := doc["servers"].([]interface{})
	if len(serversRaw) == 0 {
		return nil, NewParseError(ServersMissing, "Server URLs Not Found")
	}

	var servers []ServerDescriptor
	anyHTTPS := false
	for _, sRaw := range serversRaw {
		s, ok := sRaw.(map[string]interface{})
		if !ok {
			continue
		}
		rawURL, _ := s["url"].(string)
		if strings.Contains(rawURL, "https://") {
			anyHTTPS = true
		}
		scheme, host, port, basepath := specutil.ParseServerURL(rawURL)
		servers = append(servers, ServerDescriptor{Scheme: scheme, Host: host, Port: port, BasePath: basepath})
	}
	if len(servers) == 0 || servers[0].Host == "" {
		return nil, NewParseError(HostUnresolvable, "no host could be derived from the first server URL")
	}

	docScheme := "http"
	if anyHTTPS {
		docScheme = "https"
	}
	first := servers[0]

	spec := &NormalizedSpec{
		Dialect:     DialectOpenAPIv3,
		Servers:     servers,
		BaseURL:     docScheme + "://" + hostPort(first.Host, first.Port),
		APIBasePath: first.BasePath,
	}

	spec.Endpoints = extractEndpointsV3(doc)
	spec.SecuritySchemes = extractSecuritySchemesV3(doc)

	return spec, nil
}

func normalizeV2(doc map[string]interface{}) (*NormalizedSpec, error) {
	host, _ := doc["host"].(string)
	if host == "" {
		return nil, NewParseError(HostUnresolvable, "no `host` field present in Swagger v2 document")
	}
	basePath, _ := doc["basePath"].(string)
	if basePath == "/" {
		basePath = ""
	}

	scheme := "http"
	if schemesRaw, ok := doc["schemes"].([]interface{}); ok {
		for _, s := range schemesRaw {
			if s == "https" {
				scheme = "https"
				break
			}
		}
	}

	hostname, port := splitHostPort(host, scheme)

	spec := &NormalizedSpec{
		Dialect:     DialectSwaggerV2,
		Servers:     []ServerDescriptor{{Scheme: scheme, Host: hostname, Port: port, BasePath: basePath}},
		BaseURL:     scheme + "://" + hostPort(hostname, port),
		APIBasePath: basePath,
	}

	spec.Endpoints = extractEndpointsV2(doc)
	spec.SecuritySchemes = extractSecuritySchemesV2(doc)

	return spec, nil
}

func hostPort(host string, port int) string {
	if port == 0 {
		return host
	}
	return host + ":" + strconv.Itoa(port)
}

func splitHostPort(host, scheme string) (string, int) {
	if idx := strings.LastIndex(host, ":"); idx >= 0 {
		if port, err := strconv.Atoi(host[idx+1:]); err == nil && port > 0 {
			return host[:idx], port
		}
	}
	if scheme == "https" {
		return host, 443
	}
	return host, 80
}
