package qsym

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// Job is one input vector queued for evaluation.
type Job struct {
	ID     string
	Index  int
	Inputs []float64
}

// Result holds the readout of a Job, or the error that stopped it.
type Result struct {
	JobID  string
	Index  int
	Values []Expr
	Err    error
}

/*
Batch evaluates a circuit over many input vectors with a fixed set of
workers. The circuit is evolved once up front; workers only bind and read
out the shared symbolic state, which they never modify.
*/
type Batch struct {
	circuit *Circuit
	workers int
	extra   map[string]Expr
}

// NewBatch returns a batch evaluator. workers < 1 uses GOMAXPROCS.
func NewBatch(c *Circuit, workers int) *Batch {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Batch{circuit: c, workers: workers}
}

// With sets bindings passed to every call, as in CallWith.
func (b *Batch) With(extra map[string]Expr) *Batch {
	b.extra = extra
	return b
}

/*
Run evaluates every input vector and returns the results in input order.
When ctx is cancelled, jobs that have not started report ctx.Err().
*/
func (b *Batch) Run(ctx context.Context, inputs [][]float64) []Result {
	b.circuit.State()
	start := time.Now()

	jobs := make(chan Job, b.workers*10)
	results := make([]Result, len(inputs))

	var wg sync.WaitGroup
	for i := 0; i < min(b.workers, len(inputs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.work(ctx, jobs, results)
		}()
	}

	for i, x := range inputs {
		job := Job{ID: uuid.NewString(), Index: i, Inputs: x}
		select {
		case jobs <- job:
		case <-ctx.Done():
			results[i] = Result{JobID: job.ID, Index: i, Err: ctx.Err()}
		}
	}
	close(jobs)
	wg.Wait()

	if b.circuit.config.Verbose {
		errnie.Info(
			"Batch - circuit %s, %d jobs on %d workers in %v",
			b.circuit.ID, len(inputs), b.workers, time.Since(start),
		)
	}
	return results
}

func (b *Batch) work(ctx context.Context, jobs <-chan Job, results []Result) {
	for job := range jobs {
		if err := ctx.Err(); err != nil {
			results[job.Index] = Result{JobID: job.ID, Index: job.Index, Err: err}
			continue
		}
		values, err := b.circuit.CallWith(b.extra, job.Inputs...)
		results[job.Index] = Result{JobID: job.ID, Index: job.Index, Values: values, Err: err}
	}
}
