// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "authorcheck/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns an enveloped 200 response
func OK(data any) Response { return phttp.OK(data) }

// Raw returns a 200 response written without the envelope
func Raw(data any) Response { return phttp.Raw(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no JSON body, enveloping its result
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Lenient adapts a JSON handler whose body decodes leniently and whose result is written bare
func Lenient[T any](maxBytes int64, fn func(*http.Request, T) (any, error)) Handler {
	return phttp.LenientJSONHandler(maxBytes, fn)
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
