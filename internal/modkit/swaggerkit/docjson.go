package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"

	"authorcheck/internal/platform/config"
)

//go:embed openapi.json
var openapiJSON []byte

// docReader is swapped by tests
var docReader = func() []byte { return openapiJSON }

// serveDocJSON renders the embedded document once and serves it with no-store caching
func serveDocJSON(buildVersion string) http.HandlerFunc {
	suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")
	body, err := renderDoc(docReader(), buildVersion, suffix)

	return func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	}
}

// renderDoc stamps the build into raw and fills in what the UI and clients rely on:
// an OAS 3.0 version, a servers entry, the error schema and a 500 on every operation
func renderDoc(raw []byte, buildVersion, titleSuffix string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	ensureServers(doc, "/")
	stampInfo(doc, buildVersion, titleSuffix)

	schemas := child(child(doc, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema
	}
	forEachOperation(doc, func(op map[string]any) {
		responses := child(op, "responses")
		if _, ok := responses["500"]; !ok {
			responses["500"] = internalError
		}
	})
	return json.Marshal(doc)
}

// ensureServers pins OAS 3.0, which the bundled UI renders, and adds a servers entry when absent
func ensureServers(doc map[string]any, url string) {
	if v, _ := doc["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		doc["openapi"] = "3.0.3"
	}
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{map[string]any{"url": url}}
	}
}

// stampInfo sets info.version to the build and appends titleSuffix to info.title
func stampInfo(doc map[string]any, buildVersion, titleSuffix string) {
	info := child(doc, "info")
	if _, ok := info["title"].(string); !ok {
		info["title"] = "authorcheck API"
	}
	if buildVersion != "" {
		info["version"] = buildVersion
	}
	if titleSuffix != "" {
		info["title"] = info["title"].(string) + " " + titleSuffix
	}
}

// child returns m[key] as an object, creating it when missing or mistyped
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

func forEachOperation(doc map[string]any, fn func(op map[string]any)) {
	paths, _ := doc["paths"].(map[string]any)
	for _, p := range paths {
		item, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, o := range item {
			if op, ok := o.(map[string]any); ok {
				fn(op)
			}
		}
	}
}

// errorSchema mirrors phttp.Envelope on the error path
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

var internalError = map[string]any{
	"description": "Backend invocation failed or a panic was recovered",
	"content": map[string]any{
		"application/json": map[string]any{
			"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": map[string]any{
				"status_code": 500,
				"status":      "Internal Server Error",
				"code":        11,
				"error":       "inference status 502",
				"request_id":  "3f0c6b0e-2d4b-4c57-9d1e-0c1d2e3f4a5b",
			},
		},
	},
}
