// Package specutil holds the small pure helpers shared by the spec
// normalizer and the test plan generator: server URL parsing, URI
// path joining, and parameter-set deduplication.
package specutil

import (
	"net/url"
	"strings"
)

// ParseServerURL splits a declared server URL into scheme, host, port,
// and basepath. Port defaults to 80 for http and 443 for https when
// absent. Basepath "" and "/" are treated equivalently (returned as "").
func ParseServerURL(raw string) (scheme, host string, port int, basepath string) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "http", "", 80, ""
	}

	scheme = u.Scheme
	if scheme == "" {
		scheme = "http"
	}

	host = u.Hostname()
	port = parsePort(u.Port(), scheme)

	basepath = u.Path
	if basepath == "/" {
		basepath = ""
	}
	return scheme, host, port, basepath
}

func defaultPort(scheme string) int {
	if scheme == "https" {
		return 443
	}
	return 80
}

func parsePort(raw, scheme string) int {
	if raw == "" {
		return defaultPort(scheme)
	}
	n := 0
	for _, c := range raw {
		if c < '0' || c > '9' {
			return defaultPort(scheme)
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// JoinURIPath concatenates path parts with exactly one "/" between
// consecutive parts, preserving a leading "scheme://" in the first
// part and never appending a trailing slash unless one was already
// present in the last non-empty part.
func JoinURIPath(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}

	schemePrefix := ""
	first := nonEmpty[0]
	if idx := strings.Index(first, "://"); idx >= 0 {
		schemePrefix = first[:idx+3]
		first = first[idx+3:]
	}
	nonEmpty[0] = first

	joined := strings.Join(nonEmpty, "/")
	// collapse duplicate slashes, but not inside the scheme prefix
	collapsed := collapseSlashes(joined)

	return schemePrefix + collapsed
}

func collapseSlashes(s string) string {
	var b strings.Builder
	prevSlash := false
	for _, c := range s {
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(c)
	}
	return b.String()
}

// NamedParam is the minimal shape GetUniqueParams needs: anything with
// a Name. Callers pass slices of their own parameter record type
// through the generic below.
type NamedParam interface {
	ParamName() string
}

// GetUniqueParams returns primary plus every entry of secondary whose
// name does not already appear in primary. Ties go to primary
// (first-occurrence wins); primary's relative order is preserved, and
// secondary's non-duplicates are appended in their original order.
func GetUniqueParams[T NamedParam](primary, secondary []T) []T {
	seen := make(map[string]bool, len(primary))
	out := make([]T, 0, len(primary)+len(secondary))
	for _, p := range primary {
		out = append(out, p)
		seen[p.ParamName()] = true
	}
	for _, s := range secondary {
		if !seen[s.ParamName()] {
			out = append(out, s)
			seen[s.ParamName()] = true
		}
	}
	return out
}
