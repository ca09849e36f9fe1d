// evolve-benchmark times full composition runs across the band
// presets, reporting wall time and converged fitness per layer.
// Used to sanity-check engine throughput after operator changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/IvanM-2157801/GeneticMusic/composer"
)

func main() {
	var (
		runs = flag.Int("runs", 3, "repetitions per band")
		seed = flag.Uint64("seed", 1, "base seed, incremented per run")
	)
	flag.Parse()

	for _, band := range composer.BandNames() {
		var total time.Duration
		var fitnessSum float64
		var fitnessCount int

		for run := 0; run < *runs; run++ {
			cfg, err := composer.Band(band)
			if err != nil {
				log.Fatal(err)
			}
			cfg.Seed = *seed + uint64(run)

			c, err := composer.New(cfg)
			if err != nil {
				log.Fatal(err)
			}

			start := time.Now()
			result, err := c.Compose(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			total += time.Since(start)

			for _, lt := range result.Traces {
				fitnessSum += lt.Rhythm.FinalBest()
				fitnessCount++
				if len(lt.Melody.Points) > 0 {
					fitnessSum += lt.Melody.FinalBest()
					fitnessCount++
				}
			}
		}

		avgFitness := 0.0
		if fitnessCount > 0 {
			avgFitness = fitnessSum / float64(fitnessCount)
		}
		fmt.Printf("%-12s %3d runs  avg %8v/run  mean fitness %.4f\n",
			band, *runs, (total / time.Duration(*runs)).Round(time.Millisecond), avgFitness)
	}
}
