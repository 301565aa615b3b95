package relay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Relay holds one typed configuration value and keeps it fresh. Construction
// performs a synchronous initial load; after that, every trigger from an
// attached source re-invokes the loader. Successful loads are published
// atomically and fanned out to subscribers. Failed loads leave the held
// value untouched and are routed to the error handler.
type Relay[T any] struct {
	loader      Loader[T]
	clock       clockz.Clock
	loadTimeout time.Duration
	metrics     MetricsProvider

	state     atomic.Int32
	current   atomic.Pointer[T]
	lastError atomic.Pointer[error]
	history   *errorRing

	// publishMu serializes store-then-notify so the held value always
	// matches the most recently completed notification pass.
	publishMu sync.Mutex

	subMu       sync.RWMutex
	subscribers []func(T)

	handlerMu sync.RWMutex
	handler   func(error)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeMu sync.Mutex
	closed  bool
}

// New constructs a reload session around loader. The loader is invoked
// synchronously before New returns; if it fails, New returns an
// *InitialLoadError and no session is created.
//
// The context bounds the session's lifetime: canceling it stops every
// attached source, as does Close.
//
// Example:
//
//	type Config struct {
//	    Port int    `json:"port"`
//	    Host string `json:"host"`
//	}
//
//	r, err := relay.New[Config](ctx, loaders.File[Config]("/etc/app/config.json"))
//	if err != nil {
//	    log.Fatalf("initial config failed: %v", err)
//	}
//	defer r.Close()
//
//	r.Attach(relay.NewFileSource("/etc/app/config.json")).
//	    Every(5 * time.Minute).
//	    Subscribe(func(cfg Config) {
//	        app.Reconfigure(cfg)
//	    })
func New[T any](ctx context.Context, loader Loader[T], opts ...Option) (*Relay[T], error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}

	cfg := &config{
		clock: clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Relay[T]{
		loader:      loader,
		clock:       cfg.clock,
		loadTimeout: cfg.loadTimeout,
		metrics:     cfg.metrics,
		history:     newErrorRing(cfg.historySize),
	}
	r.ctx, r.cancel = context.WithCancel(ctx)

	value, err := r.load(r.ctx)
	if err != nil {
		r.cancel()
		return nil, &InitialLoadError{Err: err}
	}
	r.current.Store(&value)
	r.state.Store(int32(StateHealthy))

	capitan.Emit(ctx, SessionStarted,
		KeyLoadTimeout.Field(r.loadTimeout),
	)

	return r, nil
}

// Latest returns the value from the most recent successful load.
// It never blocks and never fails; a session always holds a value.
func (r *Relay[T]) Latest() T {
	return *r.current.Load()
}

// State returns the current state of the session.
func (r *Relay[T]) State() State {
	return State(r.state.Load())
}

// LastError returns the most recent reload or source failure, or nil if the
// last reload succeeded.
func (r *Relay[T]) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Errors returns the failures recorded since the last successful reload,
// oldest first. Returns nil unless WithErrorHistory is set.
func (r *Relay[T]) Errors() []error {
	return r.history.all()
}

// Subscribe registers a callback invoked with each subsequently published
// value. Subscribers are never called retroactively for the value held at
// registration time; use Latest for that. Subscribers cannot be removed.
//
// Callbacks run on the goroutine performing the reload and delay delivery
// to later subscribers; keep them short. A panicking subscriber is recovered,
// reported to the error handler as *SubscriberPanicError, and does not
// affect other subscribers.
func (r *Relay[T]) Subscribe(fn func(T)) *Relay[T] {
	if fn == nil {
		return r
	}
	r.subMu.Lock()
	r.subscribers = append(r.subscribers, fn)
	r.subMu.Unlock()
	return r
}

// OnError sets the error handler. Reload failures, source errors, and
// subscriber panics are delivered to it as *ReloadError, *SourceError, and
// *SubscriberPanicError respectively. There is one handler slot: each call
// replaces the previous handler, and nil clears it. Without a handler,
// errors are still observable via LastError and Errors but are otherwise
// dropped.
func (r *Relay[T]) OnError(fn func(error)) *Relay[T] {
	r.handlerMu.Lock()
	r.handler = fn
	r.handlerMu.Unlock()
	return r
}

// Attach starts src watching on its own goroutine. Attach never blocks and
// never fails; source setup errors arrive at the error handler as
// *SourceError. Attaching to a closed session is a no-op.
func (r *Relay[T]) Attach(src Source) *Relay[T] {
	r.closeMu.Lock()
	if r.closed {
		r.closeMu.Unlock()
		return r
	}
	r.wg.Add(1)
	r.closeMu.Unlock()

	go func() {
		defer r.wg.Done()
		src.Watch(r.ctx, r.trigger, r.reportSourceError)
	}()
	return r
}

// Every attaches an interval source that fires once per period, starting one
// period after attachment. The source runs on the session clock.
func (r *Relay[T]) Every(period time.Duration) *Relay[T] {
	return r.Attach(NewIntervalSource(period).Clock(r.clock))
}

// Pulse triggers a reload exactly as a firing source would. The reload runs
// on the calling goroutine; failures go to the error handler, not the
// caller. Pulse must not be called from inside a subscriber callback, which
// would deadlock the publish pass. On a closed session Pulse is a no-op.
func (r *Relay[T]) Pulse() {
	r.trigger()
}

// Close cancels every attached source and waits for their watch loops to
// terminate. After Close, Latest still serves the final value, Attach and
// Every are inert, and Pulse does nothing. A second Close returns ErrClosed.
func (r *Relay[T]) Close() error {
	r.closeMu.Lock()
	if r.closed {
		r.closeMu.Unlock()
		return ErrClosed
	}
	r.closed = true
	r.closeMu.Unlock()

	r.cancel()
	r.wg.Wait()

	capitan.Emit(r.ctx, SessionClosed,
		KeyState.Field(r.State().String()),
	)
	return nil
}

// trigger runs one reload attempt. Invoked inline on the firing source's
// goroutine, so one slow source does not stall another.
func (r *Relay[T]) trigger() {
	if r.ctx.Err() != nil {
		return
	}

	capitan.Emit(r.ctx, ReloadTriggered)
	if r.metrics != nil {
		r.metrics.OnTrigger()
	}

	start := r.clock.Now()
	value, err := r.load(r.ctx)
	if err != nil {
		rerr := &ReloadError{Err: err}
		r.recordError(rerr)
		r.transitionState(StateDegraded)
		capitan.Emit(r.ctx, ReloadFailed,
			KeyError.Field(err.Error()),
		)
		if r.metrics != nil {
			r.metrics.OnReloadFailure(r.clock.Since(start))
		}
		r.routeError(rerr)
		return
	}

	r.publish(value)
	capitan.Emit(r.ctx, ReloadSucceeded)
	if r.metrics != nil {
		r.metrics.OnReloadSuccess(r.clock.Since(start))
	}
}

// load invokes the loader with the configured per-load timeout.
func (r *Relay[T]) load(ctx context.Context) (T, error) {
	if r.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = r.clock.WithTimeout(ctx, r.loadTimeout)
		defer cancel()
	}
	return r.loader.Load(ctx)
}

// publish stores the value and notifies every subscriber registered before
// the pass begins. Serialized so each pass completes before the next starts.
func (r *Relay[T]) publish(value T) {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	r.current.Store(&value)
	r.lastError.Store(nil)
	r.history.clear()
	r.transitionState(StateHealthy)

	r.subMu.RLock()
	subs := make([]func(T), len(r.subscribers))
	copy(subs, r.subscribers)
	r.subMu.RUnlock()

	for _, fn := range subs {
		r.deliver(fn, value)
	}
}

// deliver invokes one subscriber, converting a panic into a routed error.
func (r *Relay[T]) deliver(fn func(T), value T) {
	defer func() {
		if p := recover(); p != nil {
			perr := &SubscriberPanicError{Value: p}
			capitan.Emit(r.ctx, SubscriberPanicked,
				KeyError.Field(perr.Error()),
			)
			r.routeError(perr)
		}
	}()
	fn(value)
}

// reportSourceError records and routes an error reported by a watch source.
// Source errors do not change the session state: the held value is still the
// latest successful load.
func (r *Relay[T]) reportSourceError(err error) {
	serr := &SourceError{Err: err}
	r.recordError(serr)
	capitan.Emit(r.ctx, SourceFailed,
		KeyError.Field(err.Error()),
	)
	if r.metrics != nil {
		r.metrics.OnSourceError()
	}
	r.routeError(serr)
}

// transitionState updates the state and emits a state change event if changed.
func (r *Relay[T]) transitionState(to State) {
	from := State(r.state.Swap(int32(to)))
	if from == to {
		return
	}
	capitan.Emit(r.ctx, SessionStateChanged,
		KeyOldState.Field(from.String()),
		KeyNewState.Field(to.String()),
	)
	if r.metrics != nil {
		r.metrics.OnStateChange(from, to)
	}
}

// recordError stores an error atomically and adds it to the history.
func (r *Relay[T]) recordError(err error) {
	e := err
	r.lastError.Store(&e)
	r.history.push(err)
}

// routeError delivers an error to the handler, if one is set.
func (r *Relay[T]) routeError(err error) {
	r.handlerMu.RLock()
	h := r.handler
	r.handlerMu.RUnlock()
	if h != nil {
		h(err)
	}
}
