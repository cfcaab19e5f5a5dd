package main

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-step/engine"
	"github.com/sheikhrachel/go-gol-step/model"
	"github.com/sheikhrachel/go-gol-step/utils"
)

// sampleResult pairs a demo grid with its next generation or the reason it was rejected
type sampleResult struct {
	name  string
	input model.Grid
	next  model.Grid
	err   error
}

// evaluateSamples computes the next generation of every sample concurrently, keeping input order
func evaluateSamples(eng *engine.Engine, samples []model.Sample) []sampleResult {
	var (
		eg      errgroup.Group
		results = make([]sampleResult, len(samples))
	)

	for i, s := range samples {
		eg.Go(func() error {
			next, err := eng.NextGeneration(s.Grid)
			results[i] = sampleResult{name: s.Name, input: s.Grid, next: next, err: err}
			return nil
		})
	}

	// Rejected grids are reported per result, the group itself never fails
	_ = eg.Wait()

	return results
}

// displayConfig shows the size-limit policy in effect
func displayConfig(out io.Writer, config utils.Config) {
	if config.EnforceMaxGridSize {
		fmt.Fprintf(out, "Size limit: %dx%d | Workers: %d\n\n",
			config.MaxRows, config.MaxColumns, config.WorkerCount())
		return
	}
	fmt.Fprintf(out, "Size limit: off | Workers: %d\n\n", config.WorkerCount())
}

// displayResult prints one before/after pair and records it in stats
func displayResult(out, errOut io.Writer, res sampleResult, stats *utils.Stats) {
	renderer := &model.TextRenderer{Out: out}

	fmt.Fprintln(out, "Input 2D grid:")
	renderer.Display(res.input)

	if res.err != nil {
		stats.Reject()
		fmt.Fprintf(errOut, "ERROR %s: %v\n", res.name, res.err)
		fmt.Fprintln(out)
		return
	}

	t := model.Compare(res.input, res.next)
	stats.Update(t.Births, t.Deaths, t.Survivors)

	fmt.Fprintln(out, "Output nextGeneration is: ")
	renderer.Display(res.next)
	fmt.Fprintf(out, "Births: %d | Deaths: %d | Survivors: %d\n\n", t.Births, t.Deaths, t.Survivors)
}

// displaySummary shows totals for the run
func displaySummary(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Evaluated: %d | Rejected: %d | Births: %d | Deaths: %d | Survivors: %d | Runtime: %s\n",
		stats.Evaluated, stats.Rejected, stats.Births, stats.Deaths, stats.Survivors, stats.Elapsed())
}
