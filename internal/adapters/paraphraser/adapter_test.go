package paraphraser

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"authorcheck/internal/platform/config"
	perr "authorcheck/internal/platform/errors"
)

type fakeBackend struct {
	out   []string
	err   error
	calls atomic.Int32
	cfg   DecodingConfig
	text  string
}

func (f *fakeBackend) Name() string { return "fake-t5" }

func (f *fakeBackend) Generate(_ context.Context, text string, cfg DecodingConfig) ([]string, error) {
	f.calls.Add(1)
	f.text, f.cfg = text, cfg
	return f.out, f.err
}

func TestDefaultDecoding(t *testing.T) {
	want := DecodingConfig{
		NumBeams: 5, NumReturnSequences: 1, RepetitionPenalty: 1.5,
		NoRepeatNGramSize: 3, Temperature: 0.9, MaxLength: 256,
	}
	if got := DefaultDecoding(); got != want {
		t.Fatalf("got %+v", got)
	}
}

func TestHumanize_FirstSequence(t *testing.T) {
	fb := &fakeBackend{out: []string{"first", "second"}}
	a := New(fb)
	got, err := a.Humanize(context.Background(), "hi")
	if err != nil || got != "first" {
		t.Fatalf("got (%q, %v)", got, err)
	}
	// short input is passed through untouched with the fixed decoding
	if fb.text != "hi" || fb.cfg != DefaultDecoding() {
		t.Fatalf("backend saw %q %+v", fb.text, fb.cfg)
	}
}

func TestHumanize_BackendError(t *testing.T) {
	a := New(&fakeBackend{err: errors.New("device-side assert triggered")})
	_, err := a.Humanize(context.Background(), "text")
	if !perr.IsCode(err, perr.ErrorCodeGeneration) {
		t.Fatalf("code %v", perr.CodeOf(err))
	}
	if perr.WireFrom(err).Message != "device-side assert triggered" {
		t.Fatalf("message %q", perr.WireFrom(err).Message)
	}
	if perr.HTTPStatus(err) != http.StatusInternalServerError {
		t.Fatalf("status %d", perr.HTTPStatus(err))
	}
}

func TestHumanize_EmptyGeneration(t *testing.T) {
	_, err := New(&fakeBackend{}).Humanize(context.Background(), "text")
	if !perr.IsCode(err, perr.ErrorCodeGeneration) || perr.WireFrom(err).Message != "empty generation" {
		t.Fatalf("got %v", err)
	}
}

func TestHumanize_Unavailable(t *testing.T) {
	a := Unavailable(errors.New("weights missing"))
	out, err := a.Humanize(context.Background(), "text")
	if out != "" {
		t.Fatalf("no partial output expected, got %q", out)
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) || perr.WireFrom(err).Message != MsgUnavailable {
		t.Fatalf("got %v", err)
	}
	if a.Name() != "" || a.Available() {
		t.Fatalf("state wrong")
	}
}

func TestOpen_Disabled(t *testing.T) {
	a := Open(context.Background(), Options{Kind: KindDisabled})
	if a.Available() || !perr.IsCode(a.Err(), perr.ErrorCodeUnavailable) {
		t.Fatalf("disabled should be unavailable, err=%v", a.Err())
	}
}

func TestOpen_HFMissingURL(t *testing.T) {
	a := Open(context.Background(), Options{Kind: KindHF, Timeout: time.Second})
	if a.Available() {
		t.Fatalf("should be unavailable")
	}
}

func TestOpen_HFWarmupAndHumanize(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Parameters != DefaultDecoding() {
			t.Errorf("parameters %+v", req.Parameters)
		}
		_, _ = w.Write([]byte(`[{"generated_text":"rewritten: ` + req.Inputs + `"}]`))
	}))
	defer srv.Close()

	a := Open(context.Background(), Options{Kind: KindHF, URL: srv.URL, Timeout: time.Second, Warmup: true})
	if !a.Available() {
		t.Fatalf("unavailable: %v", a.Err())
	}
	if a.Name() != DefaultModel {
		t.Fatalf("name %q", a.Name())
	}
	got, err := a.Humanize(context.Background(), "ok")
	if err != nil || got != "rewritten: ok" {
		t.Fatalf("got (%q, %v)", got, err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls %d", calls.Load())
	}
}

func TestOpen_HFWarmupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	a := Open(context.Background(), Options{Kind: KindHF, URL: srv.URL, Timeout: time.Second, Warmup: true})
	if a.Available() {
		t.Fatalf("should be unavailable")
	}
}

func TestOpenAIBackend_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("auth %q", r.Header.Get("Authorization"))
		}
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["model"] != "gpt-test" || req["n"] != float64(1) || req["max_completion_tokens"] != float64(256) {
			t.Errorf("request %v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-test",
			"choices":[{"index":0,"message":{"role":"assistant","content":"a plainer version"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	a := Open(context.Background(), Options{
		Kind: KindOpenAI, URL: srv.URL, Token: "sk-test", Model: "gpt-test", Timeout: time.Second,
	})
	if !a.Available() {
		t.Fatalf("unavailable: %v", a.Err())
	}
	got, err := a.Humanize(context.Background(), "An overly formal sentence.")
	if err != nil || got != "a plainer version" {
		t.Fatalf("got (%q, %v)", got, err)
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	t.Setenv("CORE_PARAPHRASER_KIND", "openai")
	o := FromConfig(config.New())
	if o.Kind != KindOpenAI || o.Model != DefaultOpenAIModel || o.URL != DefaultOpenAIURL {
		t.Fatalf("options %+v", o)
	}

	t.Setenv("CORE_PARAPHRASER_KIND", "")
	t.Setenv("CORE_PARAPHRASER_URL", "http://localhost:8081/generate")
	o = FromConfig(config.New())
	if o.Kind != KindHF || o.Model != DefaultModel || o.Timeout != DefaultTimeout || !o.Warmup {
		t.Fatalf("options %+v", o)
	}
}
