package http

import (
	"net/http"

	"authorcheck/internal/platform/net/http/bind"
)

// LenientJSONHandler decodes the body with bind.ParseJSONLenient, so a bad body reaches fn as
// the zero T, and writes fn's result bare. Errors are enveloped
func LenientJSONHandler[T any](maxBytes int64, fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in := bind.ParseJSONLenient[T](r, maxBytes)
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return Raw(out)
	})
}

// JSONHandlerNoBody calls fn without reading a request body and envelopes the result
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
