package endpoint

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/kbukum/netlayer/errors"
)

// BuildURL assembles scheme, host, path and query into a URL.
//
// The path is kept as given and escaped only where required. Query names
// and values are percent-encoded and keep their order. When the parts do not
// form a valid URL, BuildURL returns nil and an *errors.AppError with code
// ErrCodeURLConstruction.
func BuildURL(d Descriptor) (*url.URL, error) {
	if d == nil {
		return nil, errors.URLConstruction("endpoint", "descriptor is nil")
	}

	scheme := d.Scheme()
	if !scheme.Valid() {
		return nil, errors.URLConstruction("scheme", "must be http or https, got "+quote(string(scheme)))
	}

	host := d.Host()
	if err := checkHost(host); err != nil {
		return nil, err
	}

	path := d.Path()
	if err := checkPath(path); err != nil {
		return nil, err
	}

	query := d.QueryParameters()
	for _, p := range query {
		if hasControl(p.Name) || hasControl(p.Value) {
			return nil, errors.URLConstruction("query", "parameter "+quote(p.Name)+" contains control characters")
		}
	}

	u := &url.URL{
		Scheme:   string(scheme),
		Host:     host,
		Path:     path,
		RawQuery: encodeQuery(query),
	}

	// Round-trip through the parser so that anything net/http would reject
	// (bad ports, malformed IPv6 literals) fails here instead.
	parsed, err := url.Parse(u.String())
	if err != nil {
		return nil, errors.URLConstruction("url", "does not parse").WithCause(err)
	}
	if parsed.Host != host {
		return nil, errors.URLConstruction("host", quote(host)+" is not a valid authority")
	}
	// ":80" parses, but net/http would dial the local machine.
	if parsed.Hostname() == "" {
		return nil, errors.URLConstruction("host", "must not be empty")
	}
	return u, nil
}

func checkHost(host string) *errors.AppError {
	if host == "" {
		return errors.URLConstruction("host", "must not be empty")
	}
	if strings.ContainsAny(host, "/?#@\\") {
		return errors.URLConstruction("host", quote(host)+" must not contain path, query, fragment or userinfo")
	}
	for _, r := range host {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return errors.URLConstruction("host", quote(host)+" contains whitespace or control characters")
		}
	}
	if i := strings.IndexByte(host, '%'); i >= 0 && !inIPv6Literal(host, i) {
		return errors.URLConstruction("host", quote(host)+" must not be percent-encoded")
	}
	return nil
}

// inIPv6Literal reports whether index i falls inside a bracketed IPv6
// literal, where % introduces a zone.
func inIPv6Literal(host string, i int) bool {
	end := strings.IndexByte(host, ']')
	return strings.HasPrefix(host, "[") && end > i
}

func checkPath(path string) *errors.AppError {
	if path != "" && !strings.HasPrefix(path, "/") {
		return errors.URLConstruction("path", quote(path)+" must be empty or start with /")
	}
	if strings.HasPrefix(path, "//") {
		return errors.URLConstruction("path", quote(path)+" must not start with //")
	}
	if hasControl(path) {
		return errors.URLConstruction("path", "contains control characters")
	}
	return nil
}

// encodeQuery percent-encodes items in order. url.Values is not used because
// Encode sorts by key.
func encodeQuery(params []QueryParam) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.Name))
		b.WriteByte('=')
		b.WriteString(escape(p.Value))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DecodeQuery splits a raw query into ordered items, percent-decoding each
// name and value. It is the inverse of the encoding used by BuildURL.
func DecodeQuery(raw string) ([]QueryParam, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, "&")
	out := make([]QueryParam, 0, len(parts))
	for _, part := range parts {
		name, value, _ := strings.Cut(part, "=")
		n, err := url.QueryUnescape(name)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		out = append(out, QueryParam{Name: n, Value: v})
	}
	return out, nil
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func quote(s string) string {
	return "\"" + s + "\""
}
