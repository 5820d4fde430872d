package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nitonfx/signaling/arity"
	"github.com/nitonfx/signaling/reactive"
)

func addOne(v int) int {
	return v + 1
}

func pass(int) error {
	return nil
}

// buildPropagate creates w chains of h computeds over one source, each chain
// ending in an effect.
func buildPropagate(rs *reactive.ReactiveSystem, w, h int) (*reactive.Signal[int], []*reactive.Effect) {
	src := reactive.CreateSignal(rs, 1)
	effects := make([]*reactive.Effect, 0, w)
	for i := 0; i < w; i++ {
		var last reactive.Readable[int] = src
		for j := 0; j < h; j++ {
			last = arity.Computed1(rs, last, addOne)
		}
		effects = append(effects, arity.Effect1(rs, last, pass))
	}
	return src, effects
}

func runPropagate(cfg propagateConfig, render bool) error {
	tbl := table.NewWriter()
	tbl.SetTitle("Propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range cfg.Widths {
		for _, h := range cfg.Heights {
			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})

			var firstErr error
			rs := reactive.NewReactiveSystem(reactive.WithErrorHandler(func(from reactive.NodeID, err error) {
				if firstErr == nil {
					firstErr = err
				}
			}))
			src, _ := buildPropagate(rs, w, h)
			if firstErr != nil {
				return firstErr
			}

			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				if err := src.Update(addOne); err != nil {
					return fmt.Errorf("propagate %d * %d: %w", w, h, err)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if render {
		tbl.Render()
	}
	return nil
}
