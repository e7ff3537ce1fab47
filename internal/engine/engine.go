package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is the quiet window before a debounced function runs
const DefaultDebounce = 500 * time.Millisecond

const queueSize = 64

// ErrStopped is returned by Call when the loop is not running anymore
var ErrStopped = errors.New("engine stopped")

// Engine is the single goroutine that owns display state.
// Posted functions run in order and never concurrently with each other.
type Engine struct {
	logger *zap.Logger
	window time.Duration

	tasks     chan func()
	debounced chan func()
	done      chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	started bool
}

// NewEngine creates an engine with the default debounce window
func NewEngine(logger *zap.Logger) *Engine {
	return NewEngineWithWindow(logger, DefaultDebounce)
}

// NewEngineWithWindow creates an engine with a custom debounce window
func NewEngineWithWindow(logger *zap.Logger, window time.Duration) *Engine {
	return &Engine{
		logger:    logger,
		window:    window,
		tasks:     make(chan func(), queueSize),
		debounced: make(chan func(), queueSize),
		done:      make(chan struct{}),
	}
}

// Start launches the event loop in a goroutine.
// It returns immediately (non-blocking). The loop outlives ctx and runs until Stop.
func (e *Engine) Start(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	e.started = true

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	e.logger.Info("Engine starting...")
	go e.runLoop(ctx)
	return nil
}

// Post queues fn to run on the loop. Functions posted after Stop are dropped.
func (e *Engine) Post(fn func()) {
	select {
	case e.tasks <- fn:
	case <-e.done:
	}
}

// Debounce runs fn once no other Debounce call arrived for the debounce window
func (e *Engine) Debounce(fn func()) {
	select {
	case e.debounced <- fn:
	case <-e.done:
	}
}

// Call runs fn on the loop and waits for it to return
func (e *Engine) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	e.Post(func() {
		defer close(finished)
		fn()
	})

	select {
	case <-finished:
		return nil
	case <-e.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runLoop is the main event processing loop.
// Debouncing collapses bursts of playback notifications into one refresh.
func (e *Engine) runLoop(ctx context.Context) {
	defer close(e.done)

	timer := time.NewTimer(e.window)
	timer.Stop() // Start with stopped timer

	var pending func()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case fn := <-e.tasks:
			fn()

		case fn := <-e.debounced:
			// Save the latest function and reset the debounce timer
			pending = fn
			timer.Reset(e.window)

		case <-timer.C:
			if pending != nil {
				fn := pending
				pending = nil
				fn()
			}
		}
	}
}

// Stop ends the loop and waits for the running function to return.
// Queued functions that did not start are dropped.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()

	if cancel == nil {
		return nil
	}

	e.logger.Info("Engine stopping...")
	cancel()

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
