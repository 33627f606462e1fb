// Package http implements the REST surface of the service.
//
// Public routes sum two numbers passed as query parameters, a JSON body or
// headers. Protected routes do the same behind one authentication scheme
// each (API key in a header or query parameter, bearer token, basic auth)
// and are throttled by an optional rate limiter. Tracing, access logging,
// metrics and gzip compression are applied to every route.
package http
