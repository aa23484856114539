package specutil

import "testing"

func TestParseServerURL(t *testing.T) {
	cases := []struct {
		raw          string
		scheme, host string
		port         int
		basepath     string
	}{
		{"https://api.example.com/v1", "https", "api.example.com", 443, "/v1"},
		{"http://localhost:8080", "http", "localhost", 8080, ""},
		{"http://localhost:8080/", "http", "localhost", 8080, ""},
		{"https://example.com", "https", "example.com", 443, ""},
	}

	for _, c := range cases {
		scheme, host, port, basepath := ParseServerURL(c.raw)
		if scheme != c.scheme || host != c.host || port != c.port || basepath != c.basepath {
			t.Errorf("ParseServerURL(%q) = (%q, %q, %d, %q), want (%q, %q, %d, %q)",
				c.raw, scheme, host, port, basepath, c.scheme, c.host, c.port, c.basepath)
		}
	}
}

func TestJoinURIPath(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"http://example.com", "/v1/", "/users"}, "http://example.com/v1/users"},
		{[]string{"http://example.com", "", "/users/{id}"}, "http://example.com/users/{id}"},
		{[]string{"", ""}, ""},
		{[]string{"http://example.com/", "//v1//", "pets"}, "http://example.com/v1/pets"},
	}

	for _, c := range cases {
		got := JoinURIPath(c.parts...)
		if got != c.want {
			t.Errorf("JoinURIPath(%v) = %q, want %q", c.parts, got, c.want)
		}
	}
}

type namedStub struct{ name string }

func (n namedStub) ParamName() string { return n.name }

func TestGetUniqueParams(t *testing.T) {
	primary := []namedStub{{"id"}, {"name"}}
	secondary := []namedStub{{"name"}, {"age"}}

	got := GetUniqueParams(primary, secondary)
	want := []string{"id", "name", "age"}

	if len(got) != len(want) {
		t.Fatalf("got %d params, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].ParamName() != w {
			t.Errorf("index %d: got %q, want %q", i, got[i].ParamName(), w)
		}
	}
}

func TestGetUniqueParamsEmptySecondary(t *testing.T) {
	primary := []namedStub{{"id"}}
	got := GetUniqueParams(primary, nil)
	if len(got) != 1 || got[0].ParamName() != "id" {
		t.Errorf("got %v, want [id]", got)
	}
}
