package httpkit

import (
	"net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostLenient mounts a lenient JSON handler under POST. maxBytes <= 0 uses the bind default
func PostLenient[T any](r Router, path string, maxBytes int64, h func(*http.Request, T) (any, error)) {
	r.Post(path, Lenient(maxBytes, h))
}
