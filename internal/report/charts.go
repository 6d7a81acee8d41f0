// Package report – chart image rendering.
//
// Charts are rendered to PNG in memory with go-chart and embedded into the
// PDF. Rendering is best-effort: callers skip the image on error rather than
// failing report generation.
package report

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Gauge color thresholds, matching the dashboard banding.
var (
	colorLow    = drawing.ColorFromHex("28a745") // green, < 0.4
	colorMedium = drawing.ColorFromHex("ffaa00") // amber, 0.4 – 0.7
	colorHigh   = drawing.ColorFromHex("dc3545") // red, > 0.7
	colorRest   = drawing.ColorFromHex("e9ecef") // unfilled remainder
)

// gaugeColor picks the fill color for a probability value.
func gaugeColor(value float64) drawing.Color {
	switch {
	case value > 0.7:
		return colorHigh
	case value > 0.4:
		return colorMedium
	default:
		return colorLow
	}
}

// gaugePNG renders a radial gauge for a probability in [0,1]: a donut whose
// filled slice is color-coded by threshold, labeled with the percentage.
func gaugePNG(value float64) ([]byte, error) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	// go-chart rejects all-zero value sets; keep a sliver visible.
	filled := value
	if filled < 0.01 {
		filled = 0.01
	}

	g := chart.DonutChart{
		Width:  240,
		Height: 180,
		Values: []chart.Value{
			{
				Value: filled,
				Label: fmt.Sprintf("%.0f%%", value*100),
				Style: chart.Style{FillColor: gaugeColor(value)},
			},
			{
				Value: 1 - filled,
				Label: " ",
				Style: chart.Style{FillColor: colorRest},
			},
		},
	}

	var buf bytes.Buffer
	if err := g.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// taskPiePNG renders the two-slice done/pending completion chart. It returns
// an error when there are no tasks at all (nothing to draw).
func taskPiePNG(done, pending int) ([]byte, error) {
	if done+pending == 0 {
		return nil, errors.New("report: no tasks to chart")
	}

	values := make([]chart.Value, 0, 2)
	if done > 0 {
		values = append(values, chart.Value{
			Value: float64(done),
			Label: fmt.Sprintf("Done %d", done),
			Style: chart.Style{FillColor: colorLow},
		})
	}
	if pending > 0 {
		values = append(values, chart.Value{
			Value: float64(pending),
			Label: fmt.Sprintf("Pending %d", pending),
			Style: chart.Style{FillColor: colorHigh},
		})
	}

	p := chart.PieChart{Width: 220, Height: 220, Values: values}

	var buf bytes.Buffer
	if err := p.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
