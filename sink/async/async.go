// Package async decouples event delivery from the adapter's hot path.
//
// usage:
//
//	raw := zapsink.Sink{L: logger}
//	sink := async.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer sink.Close()
//
//	cache, _ := memocache.New[User](memocache.Options[User]{
//	    Config:   cfg,
//	    Registry: reg,
//	    Sink:     sink,
//	})
package async

import (
	"sync"

	"github.com/unkn0wn-root/memocache"
)

type Sink struct {
	inner memocache.EventSink
	q     chan memocache.Event
	wg    sync.WaitGroup
	once  sync.Once
}

var _ memocache.EventSink = (*Sink)(nil)

func New(inner memocache.EventSink, workers, qlen int) *Sink {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	s := &Sink{inner: inner, q: make(chan memocache.Event, qlen)}
	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer s.wg.Done()
			for e := range s.q {
				s.inner.Emit(e)
			}
		}()
	}
	return s
}

// Emit enqueues the event; when the queue is full the event is dropped.
// Observability must never backpressure cache operations.
func (s *Sink) Emit(e memocache.Event) {
	select {
	case s.q <- e:
	default: // drop
	}
}

// Close drains the queue and stops the workers.
func (s *Sink) Close() {
	s.once.Do(func() {
		close(s.q)
		s.wg.Wait()
	})
}
