package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/unkn0wn-root/memocache"
)

func TestSinkCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(reg)

	s.Emit(memocache.Event{Type: memocache.EventReadDone, Timers: memocache.Timers{
		Network: 5 * time.Millisecond,
		Total:   7 * time.Millisecond,
	}})
	s.Emit(memocache.Event{Type: memocache.EventReadDone})
	s.Emit(memocache.Event{Type: memocache.EventReadTimeout})

	if got := testutil.ToFloat64(s.events.WithLabelValues("READ_DONE")); got != 2 {
		t.Fatalf("READ_DONE count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(s.events.WithLabelValues("READ_TIMEOUT")); got != 1 {
		t.Fatalf("READ_TIMEOUT count = %v, want 1", got)
	}
	// Zero timers (INITIALIZED, timeouts without a network leg) must not
	// produce histogram samples.
	if got := testutil.CollectAndCount(s.network); got != 1 {
		t.Fatalf("network histogram series = %d, want 1", got)
	}
}
