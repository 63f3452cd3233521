package main

import (
	"net/url"

	"github.com/kbukum/netlayer/validation"
)

// parseAbsoluteURL accepts only http(s) URLs with a host and no fragment
// or userinfo, the shapes an endpoint can describe.
func parseAbsoluteURL(raw string) (*url.URL, error) {
	v := validation.New()
	u, err := url.Parse(raw)
	if err != nil {
		v.AddError("url", err.Error())
		return nil, v.Validate()
	}
	v.OneOf("url.scheme", u.Scheme, []string{"http", "https"}).
		Required("url.scheme", u.Scheme).
		Required("url.host", u.Host).
		Custom(u.User == nil, "url", "must not contain userinfo").
		Custom(u.Fragment == "", "url", "must not contain a fragment")
	if v.HasErrors() {
		return nil, v.Validate()
	}
	return u, nil
}
