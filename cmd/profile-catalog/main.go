// profile-catalog prints every fitness profile with its weight table,
// and optionally scores a rhythm string against all of them. Useful
// when tuning weights: compare how the same genome ranks across roles.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/profile"
)

func main() {
	rhythmStr := flag.String("rhythm", "", "score this rhythm string against every rhythm profile")
	flag.Parse()

	rhythms := profile.RhythmRegistry()
	melodies := profile.MelodyRegistry(music.MajorScale)

	if *rhythmStr != "" {
		rhythm, err := music.ParseRhythm(*rhythmStr)
		if err != nil {
			log.Fatal(err)
		}
		scoreAll(rhythms, rhythm)
		return
	}

	fmt.Println("rhythm profiles:")
	for _, name := range sortedKeys(rhythms) {
		printWeights(name, rhythms[name].Agg.Weights)
	}
	fmt.Println("\nmelody profiles:")
	for _, name := range sortedKeys(melodies) {
		printWeights(name, melodies[name].Agg.Weights)
	}
}

func scoreAll(registry map[string]profile.RhythmProfile, rhythm music.Rhythm) {
	fmt.Printf("rhythm %q (%d notes)\n", rhythm, rhythm.NoteCount())
	for _, name := range sortedKeys(registry) {
		fmt.Printf("  %-12s %.4f\n", name, registry[name].Evaluate(rhythm))
	}
}

func printWeights(name string, weights map[string]float64) {
	fmt.Printf("  %s\n", name)
	keys := make([]string, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("    %-24s %.2f\n", key, weights[key])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
