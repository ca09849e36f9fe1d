// genetic-music evolves a multi-layer musical pattern and prints it as
// a Strudel script with a strudel.cc share link. Each layer evolves a
// rhythm first, then a melody against that rhythm.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/IvanM-2157801/GeneticMusic/audio"
	"github.com/IvanM-2157801/GeneticMusic/composer"
	"github.com/IvanM-2157801/GeneticMusic/strudel"
	"github.com/IvanM-2157801/GeneticMusic/visual"
)

func main() {
	var (
		bandName   = flag.String("band", "pop", "band preset: "+strings.Join(composer.BandNames(), ", "))
		seed       = flag.Uint64("seed", 0, "run seed for reproducible output, 0 randomizes")
		bpm        = flag.Int("bpm", 0, "override the preset tempo")
		rhythmGens = flag.Int("rhythm-gens", 0, "override rhythm generations per layer")
		melodyGens = flag.Int("melody-gens", 0, "override melody generations per layer")
		outPath    = flag.String("out", "", "write the script to a file instead of stdout")
		showTraces = flag.Bool("traces", false, "print per-layer fitness trajectories")
		showVisual = flag.Bool("visual", false, "open the interactive trace viewer after evolving")
		play       = flag.Bool("play", false, "play a synthesized preview through the speaker")
		quiet      = flag.Bool("quiet", false, "suppress progress logging")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.Ltime)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	cfg, err := composer.Band(*bandName)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Seed = *seed
	if *bpm > 0 {
		cfg.BPM = *bpm
	}
	cfg.RhythmGenerations = *rhythmGens
	cfg.MelodyGenerations = *melodyGens

	c, err := composer.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("evolving %q band (%d layers, seed %d)", *bandName, len(cfg.Layers), *seed)
	start := time.Now()
	result, err := c.Compose(ctx)
	if err != nil {
		log.Fatal(err)
	}
	logger.Printf("evolved in %v", time.Since(start).Round(time.Millisecond))

	for _, lt := range result.Traces {
		logger.Printf("%s: rhythm %.4f, melody %.4f", lt.Layer, lt.Rhythm.FinalBest(), lt.Melody.FinalBest())
	}

	script, err := strudel.Script(result.Composition)
	if err != nil {
		log.Fatal(err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(script), 0644); err != nil {
			log.Fatal(err)
		}
		logger.Printf("script written to %s", *outPath)
	} else {
		fmt.Println(script)
	}
	fmt.Println(strudel.ShareLink(script))

	if *showTraces {
		for _, lt := range result.Traces {
			fmt.Println(lt.Rhythm.Summary())
			if len(lt.Melody.Points) > 0 {
				fmt.Println(lt.Melody.Summary())
			}
		}
	}

	if *showVisual {
		viewer, err := visual.NewViewer(result.Traces)
		if err != nil {
			log.Fatal(err)
		}
		viewer.Run()
	}

	if *play {
		player := audio.NewPlayer(audio.LoadPlayerConfig())
		logger.Printf("playing preview (%v)", audio.Duration(result.Composition).Round(time.Second))
		if err := player.Play(ctx, result.Composition); err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}
	}
}
