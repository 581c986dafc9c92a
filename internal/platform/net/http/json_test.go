package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "authorcheck/internal/platform/errors"
)

type textDTO struct {
	Text string `json:"text"`
}

func TestLenientJSONHandler_BareSuccess(t *testing.T) {
	t.Parallel()

	h := LenientJSONHandler[textDTO](0, func(_ *http.Request, in textDTO) (any, error) {
		return map[string]int{"len": len(in.Text)}, nil
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"text":"hello"}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"len":5}` {
		t.Fatalf("body %q", got)
	}
}

func TestLenientJSONHandler_BadBodyReachesHandler(t *testing.T) {
	t.Parallel()

	called := false
	h := LenientJSONHandler[textDTO](0, func(_ *http.Request, in textDTO) (any, error) {
		called = true
		if in.Text != "" {
			t.Fatalf("expected zero input, got %+v", in)
		}
		return map[string]bool{"ok": true}, nil
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{`)))

	if !called || rr.Code != http.StatusOK {
		t.Fatalf("called=%v status=%d", called, rr.Code)
	}
}

func TestLenientJSONHandler_ErrorEnveloped(t *testing.T) {
	t.Parallel()

	h := LenientJSONHandler[textDTO](0, func(_ *http.Request, _ textDTO) (any, error) {
		return nil, perr.Unavailablef("Humanizer failed.")
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"text":"a"}`)))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"error":"Humanizer failed."`) {
		t.Fatalf("body %q", rr.Body.String())
	}
}

func TestLenientJSONHandler_ResponsePassthrough(t *testing.T) {
	t.Parallel()

	h := LenientJSONHandler[textDTO](0, func(_ *http.Request, _ textDTO) (any, error) {
		return Response{Status: http.StatusAccepted, Body: "queued", Bare: true}, nil
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	t.Parallel()

	ok := JSONHandlerNoBody(func(*http.Request) (any, error) { return map[string]string{"a": "b"}, nil })
	rr := httptest.NewRecorder()
	ok(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"data":{"a":"b"}`) {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}

	bad := JSONHandlerNoBody(func(*http.Request) (any, error) { return nil, errors.New("boom") })
	rr = httptest.NewRecorder()
	bad(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
}
