package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nitonfx/signaling/reactive"
	"github.com/olekukonko/tablewriter"
)

type graphResult struct {
	sum      int
	count    int64
	duration time.Duration
}

func runGraphCases(cfg graphConfig) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "nSources", "read%", "static%",
		"nTimes", "test", "time", "updateRate", "title",
	})

	for _, gc := range cfg.Cases {
		log.Printf("Running '%s' config", gc.Name)
		best, err := runGraphCase(gc, cfg.Repeats)
		if err != nil {
			return fmt.Errorf("%s: %w", gc.Name, err)
		}
		if gc.ExpectedSum != 0 && best.sum != gc.ExpectedSum {
			return fmt.Errorf("%s: sum %d, expected %d", gc.Name, best.sum, gc.ExpectedSum)
		}
		if gc.ExpectedCount != 0 && best.count != gc.ExpectedCount {
			return fmt.Errorf("%s: count %d, expected %d", gc.Name, best.count, gc.ExpectedCount)
		}

		updateRate := float64(best.count) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			fmt.Sprintf("%dx%d", gc.Width, gc.Layers),
			fmt.Sprint(gc.Sources),
			fmt.Sprint(gc.ReadFraction),
			fmt.Sprint(gc.StaticFraction),
			humanize.Comma(int64(gc.Iterations)),
			gc.Name,
			fmt.Sprint(best.duration),
			humanize.Comma(int64(updateRate)),
			graphTitle(gc),
		})
	}
	table.Render()
	return nil
}

// runGraphCase builds the graph once, warms it up and keeps the fastest of
// repeats runs.
func runGraphCase(gc graphCase, repeats int) (graphResult, error) {
	var counter int64
	rs := reactive.NewReactiveSystem()
	g := makeGraph(rs, gc, &counter)

	if _, err := g.run(rs, gc); err != nil {
		return graphResult{}, err
	}

	best := graphResult{duration: time.Hour}
	for i := 0; i < repeats; i++ {
		log.Printf("Running '%s' config, iteration %d/%d %d%%", gc.Name, i+1, repeats, (i+1)*100/repeats)
		counter = 0
		start := time.Now()
		sum, err := g.run(rs, gc)
		if err != nil {
			return graphResult{}, err
		}
		if d := time.Since(start); d < best.duration {
			best = graphResult{sum: sum, count: counter, duration: d}
		}
	}
	return best, nil
}

func graphTitle(gc graphCase) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%dx%d %d sources", gc.Width, gc.Layers, gc.Sources))
	if gc.StaticFraction < 1 {
		sb.WriteString(" dynamic")
	}
	if gc.ReadFraction < 1 {
		sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*gc.ReadFraction))
	}
	return sb.String()
}

type graph struct {
	sources []*reactive.Signal[int]
	layers  [][]*reactive.Computed[int]
}

// makeGraph builds gc.Layers-1 rows of computeds over a row of gc.Width
// signals. Each node sums gc.Sources neighbours of the row above; dynamic
// nodes skip one of them depending on the value of the first.
func makeGraph(rs *reactive.ReactiveSystem, gc graphCase, counter *int64) *graph {
	g := &graph{sources: make([]*reactive.Signal[int], gc.Width)}
	for i := range g.sources {
		g.sources[i] = reactive.CreateSignal(rs, i)
	}

	random := rand.New(rand.NewSource(0))
	prev := make([]reactive.Readable[int], len(g.sources))
	for i, s := range g.sources {
		prev[i] = s
	}
	for l := 0; l < gc.Layers-1; l++ {
		row := makeRow(rs, prev, gc, counter, random)
		g.layers = append(g.layers, row)
		prev = make([]reactive.Readable[int], len(row))
		for i, c := range row {
			prev[i] = c
		}
	}
	return g
}

func makeRow(rs *reactive.ReactiveSystem, above []reactive.Readable[int], gc graphCase, counter *int64, random *rand.Rand) []*reactive.Computed[int] {
	row := make([]*reactive.Computed[int], len(above))
	for myDex := range above {
		mySources := make([]reactive.Readable[int], 0, gc.Sources)
		for sourceDex := 0; sourceDex < gc.Sources; sourceDex++ {
			mySources = append(mySources, above[(myDex+sourceDex)%len(above)])
		}

		if random.Float64() < gc.StaticFraction || len(mySources) < 2 {
			row[myDex] = reactive.CreateMemo(rs, func() int {
				*counter++
				sum := 0
				for _, source := range mySources {
					sum += source.Value()
				}
				return sum
			})
			continue
		}

		first, tail := mySources[0], mySources[1:]
		row[myDex] = reactive.CreateMemo(rs, func() int {
			*counter++
			sum := first.Value()
			shouldDrop := sum&0x1 > 0
			dropDex := sum % len(tail)
			for i, source := range tail {
				if shouldDrop && i == dropDex {
					continue
				}
				sum += source.Value()
			}
			return sum
		})
	}
	return row
}

// run writes one source per iteration and reads a fixed random subset of
// the leaves, returning the sum of those leaves at the end.
func (g *graph) run(rs *reactive.ReactiveSystem, gc graphCase) (int, error) {
	random := rand.New(rand.NewSource(0))
	leaves := g.layers[len(g.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - gc.ReadFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	for i := 0; i < gc.Iterations; i++ {
		sourceDex := i % len(g.sources)
		if err := rs.Batch(func() {
			g.sources[sourceDex].SetValue(i + sourceDex)
		}); err != nil {
			return 0, err
		}
		for _, leaf := range readLeaves {
			leaf.Value()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Value()
	}
	return sum, nil
}

func removeElems[T any](src []T, rmCount int, random *rand.Rand) []T {
	out := make([]T, len(src))
	copy(out, src)
	for i := 0; i < rmCount; i++ {
		rmDex := random.Intn(len(out))
		out[rmDex] = out[len(out)-1]
		out = out[:len(out)-1]
	}
	return out
}
