package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func startEngine(t *testing.T, window time.Duration) *Engine {
	t.Helper()
	e := NewEngineWithWindow(zap.NewNop(), window)
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(func() {
		_ = e.Stop(context.Background())
	})
	return e
}

func TestEngine_PostRunsInOrder(t *testing.T) {
	e := startEngine(t, time.Hour)

	var got []int
	for i := 0; i < 10; i++ {
		e.Post(func() { got = append(got, i) })
	}

	// Call is queued after every post, so all of them have run when it returns
	if err := e.Call(context.Background(), func() {}); err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	for i, v := range got {
		if v != i {
			t.Fatalf("expected in-order execution, got %v", got)
		}
	}
	if len(got) != 10 {
		t.Errorf("expected 10 tasks, got %d", len(got))
	}
}

func TestEngine_DebounceRunsLatestOnce(t *testing.T) {
	e := startEngine(t, 50*time.Millisecond)

	var runs atomic.Int32
	var last atomic.Int32
	ran := make(chan struct{}, 10)

	for i := int32(1); i <= 5; i++ {
		e.Debounce(func() {
			runs.Add(1)
			last.Store(i)
			ran <- struct{}{}
		})
	}

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never ran")
	}

	// leave room for a wrongly scheduled second run
	time.Sleep(150 * time.Millisecond)

	if runs.Load() != 1 {
		t.Errorf("expected one run, got %d", runs.Load())
	}
	if last.Load() != 5 {
		t.Errorf("expected the latest function to run, got #%d", last.Load())
	}
}

func TestEngine_CallHonoursContext(t *testing.T) {
	e := startEngine(t, time.Hour)

	block := make(chan struct{})
	e.Post(func() { <-block })
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := e.Call(ctx, func() {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestEngine_StoppedEngineDropsWork(t *testing.T) {
	e := NewEngineWithWindow(zap.NewNop(), time.Hour)
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	// fill past the queue size: posting must never block once stopped
	for i := 0; i < queueSize*2; i++ {
		e.Post(func() {})
		e.Debounce(func() {})
	}

	if err := e.Call(context.Background(), func() {}); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
}

func TestEngine_StopWithoutStart(t *testing.T) {
	e := NewEngine(zap.NewNop())
	if err := e.Stop(context.Background()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
