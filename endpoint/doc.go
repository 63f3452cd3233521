// Package endpoint describes single HTTP API calls and turns them into URLs.
//
// A Descriptor carries scheme, host, path, ordered query parameters and
// method. Endpoint is the immutable value implementation; Config is the
// same description loaded from a configuration file.
//
//	ep := endpoint.Get(endpoint.HTTPS, "api.example.com", "/v1/users",
//	    endpoint.Param("page", "2"),
//	    endpoint.Param("q", "a b"),
//	)
//	u, err := endpoint.BuildURL(ep) // https://api.example.com/v1/users?page=2&q=a%20b
package endpoint
