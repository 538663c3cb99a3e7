// Package zap adapts a zap.Logger into a memocache.EventSink.
package zap

import (
	"github.com/unkn0wn-root/memocache"
	"go.uber.org/zap"
)

// maxPayload caps how much of a cached payload ends up in a log line.
const maxPayload = 256

type Sink struct{ L *zap.Logger }

var _ memocache.EventSink = Sink{}

func (s Sink) Emit(e memocache.Event) {
	fields := []zap.Field{
		zap.String("key", e.Key),
		zap.String("normalized_key", e.NormalizedKey),
		zap.Duration("network", e.Timers.Network),
		zap.Duration("total", e.Timers.Total),
	}
	if e.TTL > 0 {
		fields = append(fields, zap.Duration("ttl", e.TTL))
	}
	if len(e.Data) > 0 {
		fields = append(fields, zap.Int("payload_bytes", len(e.Data)),
			zap.ByteString("payload", truncate(e.Data)))
	}
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}

	msg := "memocache." + string(e.Type)
	switch {
	case e.Type == memocache.EventInitialized:
		s.L.Info(msg, fields...)
	case e.Type.Failure():
		s.L.Warn(msg, fields...)
	default:
		s.L.Debug(msg, fields...)
	}
}

func truncate(b []byte) []byte {
	if len(b) > maxPayload {
		return b[:maxPayload]
	}
	return b
}
