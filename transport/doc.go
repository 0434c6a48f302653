// Package transport delivers user agents to outbound HTTP requests.
//
// Transport is an http.RoundTripper that wraps a base transport and
// sets the User-Agent header from a UASource on every request it does
// not already carry one (overridable). Requests are tagged with an
// X-Request-Id for log correlation.
package transport
