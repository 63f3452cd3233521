package endpoint

import (
	"slices"
	"strings"
)

// Scheme is the URL scheme of an endpoint.
type Scheme string

const (
	HTTP  Scheme = "http"
	HTTPS Scheme = "https"
)

// Valid reports whether s is a supported scheme.
func (s Scheme) Valid() bool {
	return s == HTTP || s == HTTPS
}

// ParseScheme converts a case-insensitive string into a Scheme.
func ParseScheme(s string) (Scheme, bool) {
	sc := Scheme(strings.ToLower(strings.TrimSpace(s)))
	return sc, sc.Valid()
}

// Method is the HTTP method of an endpoint.
type Method string

const (
	GET    Method = "GET"
	DELETE Method = "DELETE"
)

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m == GET || m == DELETE
}

// ParseMethod converts a case-insensitive string into a Method.
func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.Valid()
}

// QueryParam is a single query item. Order within a descriptor is significant.
type QueryParam struct {
	Name  string `yaml:"name" mapstructure:"name" validate:"required"`
	Value string `yaml:"value" mapstructure:"value"`
}

// Param is shorthand for QueryParam{Name: name, Value: value}.
func Param(name, value string) QueryParam {
	return QueryParam{Name: name, Value: value}
}

// Descriptor describes one API call. Implementations are plain data and
// perform no validation; BuildURL decides whether they form a valid URL.
type Descriptor interface {
	Scheme() Scheme
	Host() string
	Path() string
	QueryParameters() []QueryParam
	Method() Method
}

// Endpoint is an immutable Descriptor value.
type Endpoint struct {
	scheme Scheme
	host   string
	path   string
	query  []QueryParam
	method Method
}

var _ Descriptor = Endpoint{}

// New creates an Endpoint. The query slice is copied.
func New(method Method, scheme Scheme, host, path string, query ...QueryParam) Endpoint {
	return Endpoint{
		scheme: scheme,
		host:   host,
		path:   path,
		query:  slices.Clone(query),
		method: method,
	}
}

// Get creates a GET endpoint.
func Get(scheme Scheme, host, path string, query ...QueryParam) Endpoint {
	return New(GET, scheme, host, path, query...)
}

// Delete creates a DELETE endpoint.
func Delete(scheme Scheme, host, path string, query ...QueryParam) Endpoint {
	return New(DELETE, scheme, host, path, query...)
}

// Of copies any Descriptor into an Endpoint value.
func Of(d Descriptor) Endpoint {
	if e, ok := d.(Endpoint); ok {
		return e
	}
	return New(d.Method(), d.Scheme(), d.Host(), d.Path(), d.QueryParameters()...)
}

func (e Endpoint) Scheme() Scheme { return e.scheme }
func (e Endpoint) Host() string   { return e.host }
func (e Endpoint) Path() string   { return e.path }
func (e Endpoint) Method() Method { return e.method }

// QueryParameters returns a copy of the ordered query items.
func (e Endpoint) QueryParameters() []QueryParam {
	return slices.Clone(e.query)
}

// WithQuery returns a copy of e with params appended to its query.
func (e Endpoint) WithQuery(params ...QueryParam) Endpoint {
	out := e
	out.query = append(slices.Clone(e.query), params...)
	return out
}

// String renders the endpoint as "METHOD scheme://host/path", without the query.
func (e Endpoint) String() string {
	return string(e.method) + " " + string(e.scheme) + "://" + e.host + e.path
}
