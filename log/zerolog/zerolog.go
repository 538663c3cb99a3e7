// Package zerolog adapts a zerolog.Logger into a memocache.EventSink.
package zerolog

import (
	"github.com/rs/zerolog"
	"github.com/unkn0wn-root/memocache"
)

type Sink struct{ L zerolog.Logger }

var _ memocache.EventSink = Sink{}

func (s Sink) Emit(e memocache.Event) {
	var ev *zerolog.Event
	switch {
	case e.Type == memocache.EventInitialized:
		ev = s.L.Info()
	case e.Type.Failure():
		ev = s.L.Warn()
	default:
		ev = s.L.Debug()
	}

	ev = ev.
		Str("key", e.Key).
		Str("normalized_key", e.NormalizedKey).
		Dur("network", e.Timers.Network).
		Dur("total", e.Timers.Total)
	if e.TTL > 0 {
		ev = ev.Dur("ttl", e.TTL)
	}
	if len(e.Data) > 0 {
		ev = ev.Int("payload_bytes", len(e.Data))
	}
	if e.Err != nil {
		ev = ev.Err(e.Err)
	}
	ev.Msg("memocache." + string(e.Type))
}
