package famfolio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderChart renders a performance series as a PNG line chart: market
// value (green, filled), invested capital (red) and profit (blue), the
// same three lines the dashboard has always shown.
func RenderChart(p Performance, title string) ([]byte, error) {
	if len(p.Points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(p.Points))
	}

	xValues := make([]time.Time, len(p.Points))
	valueY := make([]float64, len(p.Points))
	investedY := make([]float64, len(p.Points))
	profitY := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xValues[i] = time.Date(pt.Date.Year(), pt.Date.Month(), pt.Date.Day(), 0, 0, 0, 0, time.UTC)
		valueY[i] = pt.Value.Float64()
		investedY[i] = pt.Invested.Float64()
		profitY[i] = pt.Profit.Float64()
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Market value",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("00cc96"),
					StrokeWidth: 2.5,
					FillColor:   drawing.ColorFromHex("00cc96").WithAlpha(50),
				},
				XValues: xValues,
				YValues: valueY,
			},
			chart.TimeSeries{
				Name: "Invested",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("ef553b"),
					StrokeWidth: 2.0,
				},
				XValues: xValues,
				YValues: investedY,
			},
			chart.TimeSeries{
				Name: "Profit",
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("1f77b4"),
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 3.0},
				},
				XValues: xValues,
				YValues: profitY,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
