package http

import (
	"bytes"
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "authorcheck/internal/platform/errors"
	phttp "authorcheck/internal/platform/net/http"
	"authorcheck/internal/services/humanize/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	got domain.HumanizeInput
	err error
}

func (f *fakeSvc) Humanize(_ context.Context, in domain.HumanizeInput) (domain.HumanizeOutput, error) {
	f.got = in
	if f.err != nil {
		return domain.HumanizeOutput{}, f.err
	}
	return domain.HumanizeOutput{Humanized: strings.ToUpper(in.Text)}, nil
}

func serve(s domain.ServicePort, body string) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	phttp.AdaptChi(mux).Route("/humanize", func(r phttp.Router) { Register(r, s, 0) })
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodPost, "/humanize", bytes.NewBufferString(body)))
	return rr
}

func TestHumanize_BareBody(t *testing.T) {
	rr := serve(&fakeSvc{}, `{"text":"quiet"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"humanized":"QUIET"}` {
		t.Fatalf("body %s", got)
	}
}

func TestHumanize_MalformedBodyIsEmptyText(t *testing.T) {
	s := &fakeSvc{}
	rr := serve(s, `nope`)
	if rr.Code != stdhttp.StatusOK || s.got.Text != "" {
		t.Fatalf("status=%d text=%q", rr.Code, s.got.Text)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"humanized":""}` {
		t.Fatalf("body %s", got)
	}
}

func TestHumanize_Errors(t *testing.T) {
	rr := serve(&fakeSvc{err: perr.Unavailablef("Humanizer failed.")}, `{"text":"x"}`)
	if rr.Code != stdhttp.StatusServiceUnavailable || !strings.Contains(rr.Body.String(), `"error":"Humanizer failed."`) {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	rr = serve(&fakeSvc{err: perr.Generationf("empty generation")}, `{"text":"x"}`)
	if rr.Code != stdhttp.StatusInternalServerError || !strings.Contains(rr.Body.String(), "empty generation") {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}
