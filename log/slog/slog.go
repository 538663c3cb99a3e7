//go:build go1.21

// Package slog adapts a standard library slog.Logger into a
// memocache.EventSink.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/memocache"
)

type Sink struct{ L *stdslog.Logger }

var _ memocache.EventSink = Sink{}

func (s Sink) Emit(e memocache.Event) {
	attrs := []stdslog.Attr{
		stdslog.String("key", e.Key),
		stdslog.String("normalized_key", e.NormalizedKey),
		stdslog.Duration("network", e.Timers.Network),
		stdslog.Duration("total", e.Timers.Total),
	}
	if e.TTL > 0 {
		attrs = append(attrs, stdslog.Duration("ttl", e.TTL))
	}
	if len(e.Data) > 0 {
		attrs = append(attrs, stdslog.Int("payload_bytes", len(e.Data)))
	}
	if e.Err != nil {
		attrs = append(attrs, stdslog.Any("err", e.Err))
	}

	level := stdslog.LevelDebug
	switch {
	case e.Type == memocache.EventInitialized:
		level = stdslog.LevelInfo
	case e.Type.Failure():
		level = stdslog.LevelWarn
	}
	s.L.LogAttrs(context.Background(), level, "memocache."+string(e.Type), attrs...)
}
