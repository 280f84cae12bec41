package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type stubResult struct {
	err error
}

func (r *stubResult) GetError() error {
	return r.err
}

type stubJob struct {
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *stubJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.shouldErr {
		return &stubResult{err: errors.New("job error")}
	}
	return &stubResult{}
}

func TestNewPool(t *testing.T) {
	if got := NewPool(context.Background(), 5).workers; got != 5 {
		t.Errorf("expected 5 workers, got %d", got)
	}
	if got := NewPool(context.Background(), 0).workers; got != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", got)
	}
	if got := NewPool(context.Background(), -3).workers; got != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", got)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(context.Background(), 3)
	pool.Start()

	var executed int32
	count := 12

	for i := 0; i < count; i++ {
		pool.Submit(&stubJob{executed: &executed})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("expected %d executed jobs, got %d", count, executed)
	}
}

// trackingJob records concurrent executions so the test can assert the pool
// never runs more jobs than workers.
type trackingJob struct {
	start    func()
	end      func()
	duration time.Duration
}

func (j *trackingJob) Execute(ctx context.Context) Result {
	if j.start != nil {
		j.start()
	}
	time.Sleep(j.duration)
	if j.end != nil {
		j.end()
	}
	return &stubResult{}
}

func TestPool_ConcurrencyBound(t *testing.T) {
	workers := 8
	pool := NewPool(context.Background(), workers)
	pool.Start()

	var current int32
	var maxConcurrent int32
	var mu sync.Mutex

	for i := 0; i < 40; i++ {
		pool.Submit(&trackingJob{
			start: func() {
				curr := atomic.AddInt32(&current, 1)
				mu.Lock()
				if curr > maxConcurrent {
					maxConcurrent = curr
				}
				mu.Unlock()
			},
			end: func() {
				atomic.AddInt32(&current, -1)
			},
			duration: 5 * time.Millisecond,
		})
	}

	pool.Wait()

	mu.Lock()
	max := maxConcurrent
	mu.Unlock()

	if max > int32(workers) {
		t.Errorf("max concurrency %d exceeded workers %d", max, workers)
	}
}

func TestPool_ErrorHandling(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	pool.Submit(&stubJob{shouldErr: true})
	pool.Submit(&stubJob{})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	failed := 0
	for _, res := range results {
		if res.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 error, got %d", failed)
	}
}

// ctxJob surfaces the execution context's error as its result.
type ctxJob struct{}

func (j *ctxJob) Execute(ctx context.Context) Result {
	return &stubResult{err: ctx.Err()}
}

func TestPool_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(ctx, 2)
	pool.Start()
	for i := 0; i < 4; i++ {
		pool.Submit(&ctxJob{})
	}

	for _, res := range pool.Wait() {
		if res.GetError() == nil {
			t.Error("job ran with a live context after caller cancellation")
		}
	}
}

func TestResultCollector(t *testing.T) {
	c := NewResultCollector()
	c.Add(&stubResult{})
	c.Add(&stubResult{err: errors.New("err")})

	if got := len(c.Results()); got != 2 {
		t.Errorf("expected 2 results, got %d", got)
	}
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()
	pool.Shutdown()

	done := make(chan struct{})
	go func() {
		pool.Submit(&stubJob{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Submit after shutdown blocked")
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	started := make(chan struct{})
	pool.Submit(&trackingJob{
		start:    func() { close(started) },
		duration: 200 * time.Millisecond,
	})
	<-started

	pool.Shutdown()

	done := make(chan struct{})
	go func() {
		for range pool.results {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Shutdown timed out")
	}
}
