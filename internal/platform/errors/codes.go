package errors

import "net/http"

// ErrorCode is the machine facing class of an error.
// Values are serialised in error envelopes, so append new codes and never renumber
type ErrorCode uint16

// Error codes
const (
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a panic recovered by middleware
	ErrorCodePanic
	// ErrorCodeUnavailable marks a backend that is absent for the process lifetime
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	ErrorCodeConflict
	ErrorCodeUnauthorized
	ErrorCodeForbidden
	ErrorCodeInvalidArgument
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	// ErrorCodeClassification marks one failed classifier call
	ErrorCodeClassification
	// ErrorCodeGeneration marks one failed paraphraser call
	ErrorCodeGeneration
)

type codeInfo struct {
	name   string
	status int
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeConflict:        {"conflict", http.StatusConflict},
	ErrorCodeUnauthorized:    {"unauthorized", http.StatusUnauthorized},
	ErrorCodeForbidden:       {"forbidden", http.StatusForbidden},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeClassification:  {"classification", http.StatusInternalServerError},
	ErrorCodeGeneration:      {"generation", http.StatusInternalServerError},
}

// String is the snake case code name used in logs
func (c ErrorCode) String() string {
	if i, ok := codes[c]; ok {
		return i.name
	}
	return "unknown"
}

// HTTPStatusCode maps c onto a response status; unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if i, ok := codes[c]; ok {
		return i.status
	}
	return http.StatusInternalServerError
}
