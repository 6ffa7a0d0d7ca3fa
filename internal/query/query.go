// Package query manages fetched GitHub data: deduplicated in-flight
// requests, staleness tracking, retries with backoff, a cache fallback
// for when the API is down, and change notification for the TUI.
package query

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/mayen007/gitfolio/internal/cache"
	"github.com/mayen007/gitfolio/internal/log"
)

// Status is the lifecycle state of a query.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is a snapshot of a query's state. Data is only meaningful when
// Status is StatusSuccess.
type Result[T any] struct {
	Data   T
	Status Status
	Err    error
	// FromCache marks data served from the persistent cache after the
	// live fetch failed.
	FromCache bool
	FetchedAt time.Time
}

func (r Result[T]) IsLoading() bool { return r.Status == StatusLoading }
func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Result[T]) IsError() bool   { return r.Status == StatusError }

// FetchFunc produces a fresh value from the API.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Options configures a Query.
type Options struct {
	// Key names the query and its cache entry.
	Key string
	// StaleTime is how long a successful result is served without
	// refetching.
	StaleTime time.Duration
	// GCTime is how long the in-memory result survives after the last
	// subscriber leaves. Zero disables collection.
	GCTime time.Duration
	Retry  RetryPolicy
}

// Query owns the lifecycle of one fetched value. All methods are safe
// for concurrent use.
type Query[T any] struct {
	opts  Options
	fetch FetchFunc[T]
	store *cache.Store

	mu       sync.Mutex
	result   Result[T]
	inflight chan struct{}
	subs     map[int]chan Result[T]
	nextSub  int
	gcTimer  *time.Timer
}

// New builds a Query around fetch. store may be nil, which disables the
// persistent cache fallback.
func New[T any](opts Options, store *cache.Store, fetch FetchFunc[T]) *Query[T] {
	return &Query[T]{
		opts:   opts,
		fetch:  fetch,
		store:  store,
		result: Result[T]{Status: StatusIdle},
		subs:   make(map[int]chan Result[T]),
	}
}

// Result returns the current snapshot without triggering a fetch.
func (q *Query[T]) Result() Result[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.result
}

// Get returns the query's value, fetching if the current result is
// missing or stale. Concurrent callers share a single fetch. If ctx is
// cancelled while a fetch is in flight, Get returns the current snapshot
// and ctx's error; the fetch itself keeps running so later callers and
// subscribers still get the result.
func (q *Query[T]) Get(ctx context.Context) (Result[T], error) {
	q.mu.Lock()
	if q.result.Status == StatusSuccess && time.Since(q.result.FetchedAt) < q.opts.StaleTime {
		res := q.result
		q.mu.Unlock()
		return res, nil
	}
	done := q.startFetchLocked(ctx)
	q.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		q.mu.Lock()
		res := q.result
		q.mu.Unlock()
		return res, ctx.Err()
	}

	q.mu.Lock()
	res := q.result
	q.mu.Unlock()
	if res.Status == StatusError {
		return res, res.Err
	}
	return res, nil
}

// Refresh forces a fetch regardless of staleness and waits for it.
func (q *Query[T]) Refresh(ctx context.Context) (Result[T], error) {
	q.mu.Lock()
	done := q.startFetchLocked(ctx)
	q.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		q.mu.Lock()
		res := q.result
		q.mu.Unlock()
		return res, ctx.Err()
	}

	q.mu.Lock()
	res := q.result
	q.mu.Unlock()
	if res.Status == StatusError {
		return res, res.Err
	}
	return res, nil
}

// Subscribe registers for state change notifications. The channel
// receives the current snapshot immediately and then every transition.
// Slow receivers miss intermediate states, never the channel itself.
// The returned cancel function must be called to release the
// subscription; once the last subscriber leaves, the result is dropped
// after GCTime.
func (q *Query[T]) Subscribe() (<-chan Result[T], func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.gcTimer != nil {
		q.gcTimer.Stop()
		q.gcTimer = nil
	}

	id := q.nextSub
	q.nextSub++
	ch := make(chan Result[T], 8)
	q.subs[id] = ch
	ch <- q.result

	cancel := func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		c, ok := q.subs[id]
		if !ok {
			return
		}
		delete(q.subs, id)
		close(c)
		if len(q.subs) == 0 {
			q.scheduleGCLocked()
		}
	}
	return ch, cancel
}

// Watch subscribes and kicks off a fetch in one call. It is the usual
// entry point for interactive consumers.
func (q *Query[T]) Watch(ctx context.Context) (<-chan Result[T], func()) {
	ch, cancel := q.Subscribe()
	go func() {
		_, _ = q.Get(ctx)
	}()
	return ch, cancel
}

// startFetchLocked ensures a fetch is running and returns its done
// channel. The caller must hold q.mu.
func (q *Query[T]) startFetchLocked(ctx context.Context) chan struct{} {
	if q.inflight != nil {
		return q.inflight
	}

	done := make(chan struct{})
	q.inflight = done
	q.result.Status = StatusLoading
	q.result.Err = nil
	q.broadcastLocked()

	// Detach from the caller so cancelling one waiter does not abort
	// the shared fetch.
	go q.run(context.WithoutCancel(ctx), done)
	return done
}

func (q *Query[T]) run(ctx context.Context, done chan struct{}) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		data, err := q.fetch(ctx)
		if err == nil {
			q.writeCache(data)
			q.finish(Result[T]{
				Data:      data,
				Status:    StatusSuccess,
				FetchedAt: time.Now(),
			}, done)
			return
		}

		lastErr = err
		if !q.opts.Retry.ShouldRetry(attempt, err) {
			break
		}

		delay := q.opts.Retry.Delay(attempt)
		log.Debug("fetch failed, retrying", "key", q.opts.Key, "attempt", attempt+1, "delay", delay, "error", err)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			q.finish(Result[T]{Status: StatusError, Err: lastErr}, done)
			return
		}
	}

	if data, ok := q.readCache(); ok {
		log.Debug("serving cached data after fetch failure", "key", q.opts.Key, "error", lastErr)
		q.finish(Result[T]{
			Data:      data,
			Status:    StatusSuccess,
			FromCache: true,
			FetchedAt: time.Now(),
		}, done)
		return
	}

	q.finish(Result[T]{Status: StatusError, Err: lastErr}, done)
}

func (q *Query[T]) finish(res Result[T], done chan struct{}) {
	q.mu.Lock()
	q.result = res
	q.inflight = nil
	q.broadcastLocked()
	q.mu.Unlock()
	close(done)
}

// broadcastLocked pushes the current snapshot to every subscriber
// without blocking. The caller must hold q.mu.
func (q *Query[T]) broadcastLocked() {
	for _, ch := range q.subs {
		select {
		case ch <- q.result:
		default:
		}
	}
}

// scheduleGCLocked arms the timer that resets the query to idle once it
// has had no subscribers for GCTime. The caller must hold q.mu.
func (q *Query[T]) scheduleGCLocked() {
	if q.opts.GCTime <= 0 {
		return
	}
	q.gcTimer = time.AfterFunc(q.opts.GCTime, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.gcTimer = nil
		if len(q.subs) == 0 && q.inflight == nil {
			q.result = Result[T]{Status: StatusIdle}
		}
	})
}

func (q *Query[T]) writeCache(data T) {
	if q.store == nil {
		return
	}
	q.store.Set(q.opts.Key, data)
}

func (q *Query[T]) readCache() (T, bool) {
	var zero T
	if q.store == nil {
		return zero, false
	}
	raw, ok := q.store.Get(q.opts.Key)
	if !ok {
		return zero, false
	}
	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Debug("discarding unreadable cache entry", "key", q.opts.Key, "error", err)
		return zero, false
	}
	return data, true
}
