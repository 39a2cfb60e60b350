// Package http is the REST transport of the VIP Motors API. It owns routing,
// the middleware chain (tracing, logging, CORS, security headers, rate
// limiting, bearer authentication and role checks), request decoding and
// the JSON envelope every response is written in. Domain errors returned by
// the service layer are translated to status codes in one place,
// errors_mapper.go.
package http
