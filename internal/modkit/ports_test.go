package modkit

import (
	"strings"
	"testing"

	"authorcheck/internal/modkit/httpkit"
)

type scorer interface{ Score() float64 }

type fixedScore float64

func (f fixedScore) Score() float64 { return float64(f) }

type portsModule struct {
	name  string
	ports any
}

func (m portsModule) MountRoutes(httpkit.Router) {}
func (m portsModule) Ports() any                 { return m.ports }
func (m portsModule) Name() string               { return m.name }

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Label  string
		Scorer scorer
	}
	type hidden struct {
		scorer scorer
	}

	cases := []struct {
		name  string
		ports any
		ok    bool
		want  float64
	}{
		{"nil", nil, false, 0},
		{"direct", scorer(fixedScore(0.7)), true, 0.7},
		{"exported field", bundle{Label: "x", Scorer: fixedScore(0.3)}, true, 0.3},
		{"unexported field", hidden{scorer: fixedScore(1)}, false, 0},
		{"non struct", 42, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[scorer](portsModule{name: "detect", ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v want %v", ok, c.ok)
			}
			if ok && got.Score() != c.want {
				t.Fatalf("score = %v want %v", got.Score(), c.want)
			}
		})
	}
}

func TestMustPortsOf_PanicNamesModule(t *testing.T) {
	t.Parallel()

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "detect") || !strings.Contains(msg, "requested port not found") {
			t.Fatalf("panic message = %q", msg)
		}
	}()
	_ = MustPortsOf[scorer](portsModule{name: "detect"})
}

func TestMustPortsOf_Returns(t *testing.T) {
	t.Parallel()

	got := MustPortsOf[scorer](portsModule{name: "detect", ports: fixedScore(0.5)})
	if got.Score() != 0.5 {
		t.Fatalf("score = %v", got.Score())
	}
}
