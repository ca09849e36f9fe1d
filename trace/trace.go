// Package trace turns engine pool statistics into per-generation
// series for reporting and charting.
package trace

import (
	"fmt"
	"strings"

	"github.com/IvanM-2157801/GeneticMusic/genetic"
)

// Point is one generation's fitness summary
type Point struct {
	Generation int
	Best       float64
	Average    float64
	Worst      float64
}

// Series is the fitness trajectory of one evolution run
type Series struct {
	Label  string
	Points []Point
}

// FromHistory builds a labeled series from an engine's per-generation
// statistics, generation 0 first
func FromHistory[F genetic.Numeric](label string, history []genetic.PoolStats[F]) Series {
	points := make([]Point, len(history))
	for i, stats := range history {
		points[i] = Point{
			Generation: i,
			Best:       float64(stats.BestScore),
			Average:    float64(stats.AverageScore),
			Worst:      float64(stats.WorstScore),
		}
	}
	return Series{Label: label, Points: points}
}

// FinalBest returns the best score of the last generation, 0 when empty
func (s Series) FinalBest() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Best
}

// Improvement is the best-score gain from first to last generation
func (s Series) Improvement() float64 {
	if len(s.Points) < 2 {
		return 0
	}
	return s.Points[len(s.Points)-1].Best - s.Points[0].Best
}

// Range returns the minimum and maximum scores across all fields,
// used to scale charts
func (s Series) Range() (min, max float64) {
	if len(s.Points) == 0 {
		return 0, 0
	}
	min, max = s.Points[0].Worst, s.Points[0].Best
	for _, p := range s.Points {
		if p.Worst < min {
			min = p.Worst
		}
		if p.Best > max {
			max = p.Best
		}
	}
	return min, max
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the best-score trajectory as a one-line bar chart
func (s Series) Sparkline() string {
	if len(s.Points) == 0 {
		return ""
	}
	min, max := s.Range()
	span := max - min
	var b strings.Builder
	for _, p := range s.Points {
		level := 0
		if span > 0 {
			level = int((p.Best - min) / span * float64(len(sparkLevels)-1))
		}
		if level < 0 {
			level = 0
		}
		if level >= len(sparkLevels) {
			level = len(sparkLevels) - 1
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

// Summary formats a one-line report for logs
func (s Series) Summary() string {
	if len(s.Points) == 0 {
		return fmt.Sprintf("%s: no generations", s.Label)
	}
	return fmt.Sprintf("%s: %d generations, best %.4f (%+.4f) %s",
		s.Label, len(s.Points), s.FinalBest(), s.Improvement(), s.Sparkline())
}
