package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution.
type Result interface {
	GetError() error
}

// Pool manages a pool of workers that execute jobs concurrently. Company
// analyses are independent, so the pool needs no ordering guarantees.
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a new worker pool with the specified number of workers.
// Jobs execute under a context derived from ctx, so cancelling it aborts
// queued and in-flight work.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}

	poolCtx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        poolCtx,
		cancelFunc: cancel,
	}
}

// Start starts the worker pool.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit submits a job to the pool for execution.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Wait waits for all submitted jobs to complete and returns the results.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown shuts down the worker pool immediately.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}

// ResultCollector accumulates results from concurrent producers.
type ResultCollector struct {
	mu      sync.Mutex
	results []Result
}

// NewResultCollector creates a new result collector.
func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// Add appends a result.
func (c *ResultCollector) Add(result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

// Results returns a copy of the collected results.
func (c *ResultCollector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}
