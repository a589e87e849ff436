package protocol

import (
	"testing"
	"time"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

type fakeSelector struct {
	index int
	calls int
}

func (f *fakeSelector) SetActive(i int) {
	f.index = i
	f.calls++
}

type fakeSender struct {
	sent []any
}

func (f *fakeSender) Send(v any) error {
	f.sent = append(f.sent, v)
	return nil
}

func newRouter() (*Router, *feature.State, *fakeSelector, *fakeSender) {
	state := feature.NewState()
	sel := &fakeSelector{}
	out := &fakeSender{}
	return NewRouter(state, sel, out), state, sel, out
}

func TestVizIndexThenFeaturesScenario(t *testing.T) {
	r, state, sel, _ := newRouter()
	now := time.Now()

	r.Handle([]byte(`{"type":"vizIndex","index":2}`), now)
	r.Handle([]byte(`{"type":"features","data":{"energyLow":0.8,"amplitude":0.9,"isBeat":true}}`), now)

	if sel.index != 2 {
		t.Fatalf("expected active index 2, got %d", sel.index)
	}
	vec := state.Vector()
	if vec.EnergyLow != 0.8 || vec.Amplitude != 0.9 || !vec.IsBeat {
		t.Fatalf("expected decoded features applied, got %+v", vec)
	}
	if vec.Brightness != feature.DefaultBrightness {
		t.Fatalf("expected brightness default %v, got %v", feature.DefaultBrightness, vec.Brightness)
	}
	if state.LastUpdate() != now {
		t.Fatal("expected staleness timestamp reset")
	}
}

func TestVizIndexMissingFieldDefaultsToZero(t *testing.T) {
	r, _, sel, _ := newRouter()
	r.Handle([]byte(`{"type":"vizIndex"}`), time.Now())
	if sel.calls != 1 || sel.index != 0 {
		t.Fatalf("expected selection of 0, got index %d (%d calls)", sel.index, sel.calls)
	}
}

func TestPingEmitsExactlyOnePongWithoutStateChange(t *testing.T) {
	r, state, sel, out := newRouter()
	before := state.Vector()

	r.Handle([]byte(`{"type":"ping"}`), time.Now())

	if len(out.sent) != 1 {
		t.Fatalf("expected exactly one reply, got %d", len(out.sent))
	}
	p, ok := out.sent[0].(pong)
	if !ok || p.Type != "pong" {
		t.Fatalf("expected pong reply, got %#v", out.sent[0])
	}
	if sel.calls != 0 {
		t.Fatal("expected no selection change on ping")
	}
	after := state.Vector()
	if before.EnergyLow != after.EnergyLow || before.TempoBPM != after.TempoBPM || !state.LastUpdate().IsZero() {
		t.Fatal("expected feature state untouched by ping")
	}
}

func TestMalformedPayloadsDroppedSilently(t *testing.T) {
	r, state, sel, out := newRouter()
	now := time.Now()

	for _, raw := range []string{
		`this is not json`,
		`{"type":"features","data":"nope"}`,
		`{"type":"mystery"}`,
		``,
	} {
		r.Handle([]byte(raw), now)
	}

	if sel.calls != 0 || len(out.sent) != 0 {
		t.Fatal("expected malformed input to produce no effects")
	}
	if !state.LastUpdate().IsZero() {
		t.Fatal("expected no feature update from malformed input")
	}
}

func TestMistypedFieldDefaultsWithoutDroppingUpdate(t *testing.T) {
	r, state, _, _ := newRouter()
	now := time.Now()

	r.Handle([]byte(`{"type":"features","data":{"energyLow":"loud","amplitude":0.9,"isBeat":true}}`), now)

	vec := state.Vector()
	if vec.Amplitude != 0.9 || !vec.IsBeat {
		t.Fatalf("expected valid fields applied despite mistyped sibling, got %+v", vec)
	}
	if vec.EnergyLow != 0 {
		t.Fatalf("expected mistyped energyLow to fall back to 0, got %v", vec.EnergyLow)
	}
	if state.LastUpdate() != now {
		t.Fatal("expected staleness timestamp reset")
	}
}

func TestNilSenderPingIsSafe(t *testing.T) {
	state := feature.NewState()
	r := NewRouter(state, &fakeSelector{}, nil)
	r.Handle([]byte(`{"type":"ping"}`), time.Now())
}
