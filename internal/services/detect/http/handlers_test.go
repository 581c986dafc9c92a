package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authorcheck/internal/core/verdict"
	perr "authorcheck/internal/platform/errors"
	phttp "authorcheck/internal/platform/net/http"
	"authorcheck/internal/services/detect/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	got domain.DetectInput
	out domain.DetectOutput
	err error
}

func (f *fakeSvc) Detect(_ context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	f.got = in
	return f.out, f.err
}

func mount(s domain.ServicePort, maxBody int64) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/detect", func(sub phttp.Router) { Register(sub, s, maxBody) })
	return mux
}

func post(h stdhttp.Handler, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(stdhttp.MethodPost, "/detect", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestDetect_BareVerdictBody(t *testing.T) {
	s := &fakeSvc{out: verdict.Decide(0.25, []string{"in conclusion"})}
	rr := post(mount(s, 0), `{"text":"hello"}`, "application/json")

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 4 || body["label"] != "AI-Generated" || body["is_ai"] != true {
		t.Fatalf("unexpected body %v", body)
	}
	if s.got.Text != "hello" {
		t.Fatalf("service got %+v", s.got)
	}
}

func TestDetect_LenientBodies(t *testing.T) {
	cases := []struct {
		name, body, ct string
	}{
		{"malformed", `{"text":`, "application/json"},
		{"empty", ``, ""},
		{"wrong type", `{"text":42}`, "application/json"},
		{"array", `["x"]`, "application/json"},
		{"no content type", `{"other":"x"}`, "text/plain"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := &fakeSvc{out: verdict.ShortText()}
			rr := post(mount(s, 0), c.body, c.ct)
			if rr.Code != stdhttp.StatusOK {
				t.Fatalf("status %d", rr.Code)
			}
			if s.got.Text != "" {
				t.Fatalf("expected empty text, got %q", s.got.Text)
			}
			if !strings.Contains(rr.Body.String(), `"message":"Text too short for analysis."`) {
				t.Fatalf("body %s", rr.Body.String())
			}
		})
	}
}

func TestDetect_ContentTypeIgnored(t *testing.T) {
	s := &fakeSvc{out: verdict.ShortText()}
	post(mount(s, 0), `{"text":"plain text header"}`, "text/plain")
	if s.got.Text != "plain text header" {
		t.Fatalf("got %q", s.got.Text)
	}
}

func TestDetect_ErrorsAreEnveloped(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{perr.Unavailablef("Detector failed."), stdhttp.StatusServiceUnavailable, "Detector failed."},
		{perr.Classificationf("inference status 502"), stdhttp.StatusInternalServerError, "inference status 502"},
	}
	for _, c := range cases {
		rr := post(mount(&fakeSvc{err: c.err}, 0), `{"text":"x"}`, "application/json")
		if rr.Code != c.status {
			t.Fatalf("status %d want %d", rr.Code, c.status)
		}
		var env phttp.Envelope
		_ = json.Unmarshal(rr.Body.Bytes(), &env)
		if env.Error != c.msg || env.StatusCode != c.status {
			t.Fatalf("envelope %+v", env)
		}
	}
}

func TestDetect_OversizedBodyIsEmptyText(t *testing.T) {
	s := &fakeSvc{out: verdict.ShortText()}
	post(mount(s, 16), `{"text":"`+strings.Repeat("a", 64)+`"}`, "application/json")
	if s.got.Text != "" {
		t.Fatalf("expected truncated body to decode empty, got %d chars", len(s.got.Text))
	}
}
