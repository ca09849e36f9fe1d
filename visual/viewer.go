// Package visual is a small terminal viewer for evolution traces. One
// chart per layer and phase, best and average curves overlaid, arrow
// keys to move between layers.
package visual

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/IvanM-2157801/GeneticMusic/composer"
	"github.com/IvanM-2157801/GeneticMusic/trace"
)

// Viewer displays the fitness trajectories of a finished run
type Viewer struct {
	screen   tcell.Screen
	traces   []composer.LayerTrace
	selected int
	melody   bool
}

// NewViewer opens a terminal screen over the given traces
func NewViewer(traces []composer.LayerTrace) (*Viewer, error) {
	if len(traces) == 0 {
		return nil, fmt.Errorf("no traces to display")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &Viewer{screen: screen, traces: traces}, nil
}

// Run draws and handles input until the user quits
func (v *Viewer) Run() {
	defer v.screen.Fini()

	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				v.selected = (v.selected + len(v.traces) - 1) % len(v.traces)
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				v.selected = (v.selected + 1) % len(v.traces)
			case ev.Key() == tcell.KeyTab || ev.Rune() == 'm':
				v.melody = !v.melody
			}
		}
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	lt := v.traces[v.selected]
	series := lt.Rhythm
	phase := "rhythm"
	if v.melody {
		series = lt.Melody
		phase = "melody"
	}

	header := fmt.Sprintf(" %s [%s]  layer %d/%d  (arrows: layer, tab: phase, q: quit)",
		lt.Layer, phase, v.selected+1, len(v.traces))
	v.drawText(0, 0, header, tcell.StyleDefault.Bold(true))

	if len(series.Points) == 0 {
		v.drawText(2, 2, "no generations recorded", tcell.StyleDefault.Dim(true))
		v.screen.Show()
		return
	}

	chartTop, chartBottom := 2, height-3
	if chartBottom <= chartTop {
		v.screen.Show()
		return
	}
	v.drawChart(series, chartTop, chartBottom, width)
	v.drawText(0, height-1, " "+series.Summary(), tcell.StyleDefault.Dim(true))

	v.screen.Show()
}

// drawChart plots best (green) and average (blue) scores per generation
func (v *Viewer) drawChart(series trace.Series, top, bottom, width int) {
	min, max := series.Range()
	span := max - min
	if span == 0 {
		span = 1
	}
	rows := bottom - top

	// y axis labels
	v.drawText(0, top, fmt.Sprintf("%7.3f", max), tcell.StyleDefault.Dim(true))
	v.drawText(0, bottom, fmt.Sprintf("%7.3f", min), tcell.StyleDefault.Dim(true))

	chartLeft := 9
	chartWidth := width - chartLeft - 1
	if chartWidth < 2 {
		return
	}

	bestStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	avgStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)

	for x := 0; x < chartWidth; x++ {
		// map column to generation index
		idx := x * (len(series.Points) - 1) / maxInt(chartWidth-1, 1)
		if idx >= len(series.Points) {
			idx = len(series.Points) - 1
		}
		p := series.Points[idx]

		avgRow := bottom - int((p.Average-min)/span*float64(rows))
		bestRow := bottom - int((p.Best-min)/span*float64(rows))
		v.screen.SetContent(chartLeft+x, clampInt(avgRow, top, bottom), '·', nil, avgStyle)
		v.screen.SetContent(chartLeft+x, clampInt(bestRow, top, bottom), '█', nil, bestStyle)
	}
}

func (v *Viewer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
