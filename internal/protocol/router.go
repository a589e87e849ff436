// Package protocol decodes the inbound control stream. Three message kinds
// exist: feature updates, visualizer selection, and liveness pings. Anything
// that fails structural parsing is dropped on the floor; the renderer just
// keeps showing the decaying prior state.
package protocol

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/poetics22/glowjack-receiver/internal/feature"
)

// Sender carries the pong reply back on the same logical channel the ping
// arrived on.
type Sender interface {
	Send(v any) error
}

// Selector receives the externally chosen visualizer index. The scheduler
// satisfies this.
type Selector interface {
	SetActive(i int)
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Index *int            `json:"index"`
}

type pong struct {
	Type string `json:"type"`
}

// Router applies decoded messages to the shared state. It never returns an
// error: every malformed input degrades into "keep rendering as-is".
type Router struct {
	state    *feature.State
	selector Selector
	out      Sender
}

func NewRouter(state *feature.State, selector Selector, out Sender) *Router {
	return &Router{state: state, selector: selector, out: out}
}

// Handle processes one raw message. now stamps feature arrivals for the
// staleness clock.
func (r *Router) Handle(raw []byte, now time.Time) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return
	}

	switch env.Type {
	case "features":
		var u feature.Update
		if err := json.Unmarshal(env.Data, &u); err != nil {
			// A mistyped individual field is not a malformed message: the
			// decoder leaves that field unset (so it defaults) and still
			// fills the rest. Only syntax errors and a non-object data
			// value drop the whole update.
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) || typeErr.Field == "" {
				return
			}
		}
		r.state.Apply(u, now)

	case "vizIndex":
		idx := 0
		if env.Index != nil {
			idx = *env.Index
		}
		r.selector.SetActive(idx)

	case "ping":
		if r.out != nil {
			// Reply failures are the transport's problem, not ours.
			_ = r.out.Send(pong{Type: "pong"})
		}
	}
}
