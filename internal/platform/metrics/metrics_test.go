package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T) string {
	t.Helper()
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	if rr.Code != 200 {
		t.Fatalf("status %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	return string(body)
}

func TestSetBackendUp(t *testing.T) {
	SetBackendUp("classifier", true)
	if body := scrape(t); !strings.Contains(body, `authorcheck_backend_up{backend="classifier"} 1`) {
		t.Fatalf("gauge not up:\n%s", body)
	}
	SetBackendUp("classifier", false)
	if body := scrape(t); !strings.Contains(body, `authorcheck_backend_up{backend="classifier"} 0`) {
		t.Fatalf("gauge not down:\n%s", body)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	Verdicts.WithLabelValues("AI-Generated").Inc()
	ShortTexts.Inc()
	PhraseHits.WithLabelValues("moreover").Inc()
	ObserveBackend("paraphraser", OutcomeOK, time.Now())

	body := scrape(t)
	for _, want := range []string{
		`authorcheck_detect_verdicts_total{label="AI-Generated"}`,
		"authorcheck_detect_short_texts_total",
		`authorcheck_patterns_phrase_hits_total{phrase="moreover"}`,
		`authorcheck_backend_latency_seconds_count{backend="paraphraser",outcome="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %s", want)
		}
	}
}
