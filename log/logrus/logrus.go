// Package logrus adapts a logrus.Entry into a memocache.EventSink.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/memocache"
)

type Sink struct{ E *logrus.Entry }

var _ memocache.EventSink = Sink{}

func (s Sink) Emit(e memocache.Event) {
	f := logrus.Fields{
		"key":            e.Key,
		"normalized_key": e.NormalizedKey,
		"network":        e.Timers.Network,
		"total":          e.Timers.Total,
	}
	if e.TTL > 0 {
		f["ttl"] = e.TTL
	}
	if len(e.Data) > 0 {
		f["payload_bytes"] = len(e.Data)
	}
	if e.Err != nil {
		f["error"] = e.Err
	}

	entry := s.E.WithFields(f)
	msg := "memocache." + string(e.Type)
	switch {
	case e.Type == memocache.EventInitialized:
		entry.Info(msg)
	case e.Type.Failure():
		entry.Warn(msg)
	default:
		entry.Debug(msg)
	}
}
