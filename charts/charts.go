package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"finfit/backend/models"
)

// Generator renders dashboard charts as PNG images.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// SpendingChart renders the weekly spending/income series as a line chart.
// Returns nil when the series is empty.
func (g *Generator) SpendingChart(series models.SpendingSeries) ([]byte, error) {
	if len(series.Labels) == 0 {
		return nil, nil
	}
	if sum(series.Spending)+sum(series.Income) == 0 {
		// Flat zero lines give the renderer a zero y-range; a linked but
		// idle account gets no chart rather than an error.
		return nil, nil
	}

	xValues := make([]float64, len(series.Labels))
	ticks := make([]chart.Tick, len(series.Labels))
	for i, label := range series.Labels {
		xValues[i] = float64(i + 1)
		ticks[i] = chart.Tick{Value: float64(i + 1), Label: label}
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Spending",
				XValues: xValues,
				YValues: series.Spending,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: series.Income,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render spending chart: %w", err)
	}
	return buf.Bytes(), nil
}
