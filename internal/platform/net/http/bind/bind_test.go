package bind

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "authorcheck/internal/platform/errors"
)

type textIn struct {
	Text string `json:"text"`
}

func lenient(t *testing.T, body string, max int64) textIn {
	t.Helper()
	req := httptest.NewRequest("POST", "/detect", strings.NewReader(body))
	return ParseJSONLenient[textIn](req, max)
}

func TestParseJSONLenient_Success(t *testing.T) {
	if got := lenient(t, `{"text":"hello"}`, 0); got.Text != "hello" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONLenient_DegradesToZero(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"whitespace":   "  \n ",
		"malformed":    `{"text":`,
		"wrong type":   `{"text":42}`,
		"array":        `["hello"]`,
		"scalar":       `"hello"`,
		"null":         `null`,
		"missing text": `{"other":"x"}`,
		"trailing":     `{"text":"a"} {"text":"b"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if got := lenient(t, body, 0); got.Text != "" {
				t.Fatalf("expected empty text, got %q", got.Text)
			}
		})
	}
}

func TestParseJSONLenient_UnknownFieldsAllowed(t *testing.T) {
	if got := lenient(t, `{"text":"hi","lang":"en"}`, 0); got.Text != "hi" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONLenient_ContentTypeIgnored(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"plain"}`))
	req.Header.Set("Content-Type", "text/plain")
	if got := ParseJSONLenient[textIn](req, 0); got.Text != "plain" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONLenient_Oversized(t *testing.T) {
	body := `{"text":"` + strings.Repeat("x", 64) + `"}`
	if got := lenient(t, body, 16); got.Text != "" {
		t.Fatalf("oversized body should degrade, got %d chars", len(got.Text))
	}
	if got := lenient(t, body, int64(len(body))); got.Text == "" {
		t.Fatalf("body at the limit should decode")
	}
}

func TestParseJSONLenient_NilBody(t *testing.T) {
	req, _ := http.NewRequest("POST", "/", nil)
	if got := ParseJSONLenient[textIn](req, 0); got.Text != "" {
		t.Fatalf("got %+v", got)
	}
}

type backendOpts struct {
	URL     string        `json:"url"     validate:"required,endpoint"`
	Timeout time.Duration `json:"timeout" validate:"gt=0"`
	Limit   int           `json:"limit"   validate:"min=1"`
}

func TestValidate_OK(t *testing.T) {
	err := Validate(backendOpts{URL: "https://example.test/models/x", Timeout: time.Second, Limit: 1})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	ok := backendOpts{URL: "http://localhost:8080", Timeout: time.Second, Limit: 1}
	cases := []struct {
		name  string
		mut   func(*backendOpts)
		field string
		msg   string
	}{
		{"missing url", func(o *backendOpts) { o.URL = "" }, "url", "url is a required field"},
		{"bad scheme", func(o *backendOpts) { o.URL = "ftp://host/x" }, "url", "url must be an http or https URL"},
		{"relative", func(o *backendOpts) { o.URL = "/models/x" }, "url", "url must be an http or https URL"},
		{"timeout", func(o *backendOpts) { o.Timeout = 0 }, "timeout", "timeout must be greater than 0"},
		{"limit", func(o *backendOpts) { o.Limit = 0 }, "limit", "limit must be at least 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := ok
			c.mut(&o)
			err := Validate(o)
			if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("expected validation code, got %v (%v)", perr.CodeOf(err), err)
			}
			e, _ := perr.As(err)
			if e.Field() != c.field {
				t.Fatalf("field = %q want %q", e.Field(), c.field)
			}
			if err.Error() != c.msg {
				t.Fatalf("msg = %q want %q", err.Error(), c.msg)
			}
		})
	}
}

func TestValidate_NonStruct(t *testing.T) {
	if perr.CodeOf(Validate(5)) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation code for non-struct")
	}
}

func TestTagNameFunc_Fallbacks(t *testing.T) {
	type s struct {
		Tagged int `json:"foo,omitempty" validate:"min=1"`
		Secret int `json:"-" validate:"min=1"`
		Plain  int `validate:"min=1"`
	}
	err := Get().Validator.Struct(s{Tagged: 1, Secret: 1})
	if field, _ := ValidationFieldAndMessage(err); field != "Plain" {
		t.Fatalf("expected Plain, got %s", field)
	}
	err = Get().Validator.Struct(s{Plain: 1, Secret: 1})
	if field, _ := ValidationFieldAndMessage(err); field != "foo" {
		t.Fatalf("expected foo, got %s", field)
	}
	err = Get().Validator.Struct(s{Plain: 1, Tagged: 1})
	if field, _ := ValidationFieldAndMessage(err); field != "Secret" {
		t.Fatalf("expected Secret, got %s", field)
	}
}

func TestValidationFieldAndMessage_Passthrough(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should be empty")
	}
	if f, m := ValidationFieldAndMessage(errors.New("boom")); f != "" || m != "boom" {
		t.Fatalf("got field=%q msg=%q", f, m)
	}
}
