package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/worker"
)

// Result is the outcome of one case.
type Result struct {
	Case    Case
	Nodes   uint64
	Elapsed time.Duration
	Err     error
}

// Passed reports whether the case ran and produced the expected count.
func (r Result) Passed() bool {
	return r.Err == nil && r.Nodes == r.Case.Nodes
}

// Run replays each case's moves under the given rules and counts its perft
// nodes on a pool of workers. Results come back in case order. A cancelled
// context stops cases that have not started; those report the context's
// error.
func Run(ctx context.Context, rules engine.Rules, cases []Case, workers int) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = Result{Case: c}
	}
	if len(cases) == 0 {
		return results
	}

	pool := worker.NewPool(processFunc(ctx),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(cases)))
	pool.Start()

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-finished:
		}
	}()

	ran := make([]bool, len(cases))
	go func() {
		for i, c := range cases {
			pos, err := engine.ReplayMoves(rules, c.Moves)
			if err != nil {
				results[i].Err = errors.Wrapf(err, "case %s", c.Name)
				ran[i] = true
				continue
			}
			pool.Submit(worker.WorkItem{Index: i, Name: c.Name, Position: pos, Depth: c.Depth})
		}
		pool.Close()
	}()

	for res := range pool.Results() {
		results[res.Index].Nodes = res.Nodes
		results[res.Index].Elapsed = res.Elapsed
		results[res.Index].Err = res.Error
		ran[res.Index] = true
	}

	for i := range results {
		if !ran[i] {
			err := ctx.Err()
			if err == nil {
				err = fmt.Errorf("case %s was not run", results[i].Case.Name)
			}
			results[i].Err = err
		}
	}
	return results
}

// processFunc counts one job's perft nodes, honouring ctx.
func processFunc(ctx context.Context) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		start := time.Now()
		nodes, err := item.Position.Perft(ctx, item.Depth)
		return worker.ProcessResult{
			Index:   item.Index,
			Name:    item.Name,
			Nodes:   nodes,
			Elapsed: time.Since(start),
			Error:   err,
		}
	}
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}
