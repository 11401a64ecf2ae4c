package charts

import (
	"bytes"
	"testing"

	"finfit/backend/models"
)

func TestSpendingChartRendersPNG(t *testing.T) {
	g := NewGenerator()

	series := models.SpendingSeries{
		Labels:   []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		Spending: []float64{120.50, 89.20, 240.00, 66.75},
		Income:   []float64{0, 3250.00, 0, 0},
	}

	png, err := g.SpendingChart(series)
	if err != nil {
		t.Fatalf("SpendingChart failed: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("Expected non-empty PNG output")
	}

	pngHeader := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("Expected output to start with the PNG header")
	}
}

func TestSpendingChartAllZeroSeries(t *testing.T) {
	g := NewGenerator()

	// A linked account with no activity in the window produces four zero
	// buckets; the renderer cannot draw a zero y-range, so no chart.
	series := models.SpendingSeries{
		Labels:   []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		Spending: []float64{0, 0, 0, 0},
		Income:   []float64{0, 0, 0, 0},
	}

	png, err := g.SpendingChart(series)
	if err != nil {
		t.Fatalf("SpendingChart failed: %v", err)
	}
	if png != nil {
		t.Errorf("Expected nil output for all-zero series, got %d bytes", len(png))
	}
}

func TestSpendingChartEmptySeries(t *testing.T) {
	g := NewGenerator()

	png, err := g.SpendingChart(models.SpendingSeries{})
	if err != nil {
		t.Fatalf("SpendingChart failed: %v", err)
	}
	if png != nil {
		t.Errorf("Expected nil output for empty series, got %d bytes", len(png))
	}
}
