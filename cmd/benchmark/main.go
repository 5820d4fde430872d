package main

import (
	"context"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"
)

const (
	configKey     = "config"
	cpuProfileKey = "cpuprofile"
	iterationsKey = "iterations"
	quietKey      = "quiet"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation through reactive graphs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with benchmark cases, layered over the built-in ones",
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Write one source feeding w chains of h computeds, each ending in an effect",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  iterationsKey,
						Usage: "Writes per graph size, overrides the configured value when set",
					},
					&cli.BoolFlag{
						Name:  quietKey,
						Usage: "Skip rendering the results table",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd.String(configKey))
					if err != nil {
						return err
					}
					if n := int(cmd.Uint(iterationsKey)); n > 0 {
						cfg.Propagate.Iterations = n
					}
					return profiled(cmd.String(cpuProfileKey), func() error {
						log.Printf("warming up")
						return runPropagate(cfg.Propagate, !cmd.Bool(quietKey))
					})
				},
			},
			{
				Name:  "graph",
				Usage: "Run the layered graph cases with static and dynamic dependencies",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd.String(configKey))
					if err != nil {
						return err
					}
					log.Print("Starting graph benchmark, please wait...")
					defer log.Print("Finished graph benchmark")
					return profiled(cmd.String(cpuProfileKey), func() error {
						return runGraphCases(cfg.Graph)
					})
				},
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// profiled runs fn under a CPU profile written to path. An empty path
// disables profiling.
func profiled(path string, fn func() error) error {
	if path == "" {
		return fn()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()
	return fn()
}
