// Package render draws the anomaly field onto a tcell screen for the
// demo loop. Presentation only; it reads world state and never mutates it.
package render

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riftpulse/component"
	"github.com/lixenwraith/riftpulse/core"
	"github.com/lixenwraith/riftpulse/engine"
)

const barWidth = 20

// Renderer draws one row per live anomaly: a state glyph plus
// stability/severity/health bars
type Renderer struct {
	world *engine.World
}

// NewRenderer creates a renderer over the given world
func NewRenderer(world *engine.World) *Renderer {
	return &Renderer{world: world}
}

// Draw renders the anomaly table starting at row y. Returns the number of
// rows drawn.
func (r *Renderer) Draw(screen tcell.Screen, y int) int {
	entities := r.world.Anomalies.All()
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })

	row := y
	for _, e := range entities {
		a, ok := r.world.Anomalies.Get(e)
		if !ok {
			continue
		}
		v, _ := r.world.Visuals.Get(e)

		drawText(screen, 0, row, r.glyphStyle(a, v), string(r.glyph(v)))
		drawText(screen, 2, row, tcell.StyleDefault, fmt.Sprintf("#%d", e))

		drawBar(screen, 8, row, "stb", a.Stability, tcell.ColorTeal)
		drawBar(screen, 8+barWidth+7, row, "sev", a.Severity, tcell.ColorOrange)
		drawBar(screen, 8+2*(barWidth+7), row, "hp", a.Health, tcell.ColorGreen)
		row++
	}
	return row - y
}

func (r *Renderer) glyph(v component.VisualComponent) rune {
	switch {
	case v.Has(component.FlagSupercritical):
		return '✸'
	case v.Has(component.FlagPulsing):
		return '◉'
	default:
		return '○'
	}
}

func (r *Renderer) glyphStyle(a component.AnomalyComponent, v component.VisualComponent) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case v.Has(component.FlagSupercritical):
		style = style.Foreground(tcell.ColorRed).Bold(true).Blink(true)
	case v.Has(component.FlagPulsing):
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	case a.Severity > 0.7:
		style = style.Foreground(tcell.ColorOrange)
	default:
		style = style.Foreground(tcell.ColorTeal)
	}
	return style
}

// Count returns the number of live anomalies, for the status line
func (r *Renderer) Count() int {
	return r.world.Anomalies.Count()
}

// Entities returns live anomaly ids in ascending order, for input handling
func (r *Renderer) Entities() []core.Entity {
	entities := r.world.Anomalies.All()
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })
	return entities
}

func drawBar(screen tcell.Screen, x, y int, label string, value float64, color tcell.Color) {
	drawText(screen, x, y, tcell.StyleDefault.Dim(true), label)
	filled := int(value * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	for i := 0; i < barWidth; i++ {
		ch := '░'
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i < filled {
			ch = '█'
			style = tcell.StyleDefault.Foreground(color)
		}
		screen.SetContent(x+len(label)+1+i, y, ch, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
