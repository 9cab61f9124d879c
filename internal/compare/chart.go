package compare

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// Chart renders the output size of each result, as a percentage of the input,
// as an SVG bar chart. Failed results are left out. The Y axis always spans
// 0..100% or more, so equal bars (an empty input) still render.
func Chart(w io.Writer, title string, results []Result) error {
	bars := make([]chart.Value, 0, len(results))
	top := 100.0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		p := r.Stats.Percent()
		bars = append(bars, chart.Value{Label: r.Name, Value: p})
		top = max(top, p)
	}

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:   512,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	return graph.Render(chart.SVG, w)
}
