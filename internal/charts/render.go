// Package charts draws the dashboard chart series as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"finanzas/internal/core"
)

const (
	incomeHex  = "#2DD4BF"
	expenseHex = "#F472B6"
)

// Palette cycles through the category slices of the pie chart.
var Palette = []string{"#2DD4BF", "#F472B6", "#A78BFA", "#FB923C", "#60A5FA", "#34D399", "#F87171"}

// Renderer turns chart series into PNG bytes.
type Renderer struct {
	width  int
	height int
}

type Option func(*Renderer)

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{width: 800, height: 400}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func axisAmount(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%s %.0f", core.CurrencySymbol, f)
	}
	return ""
}

// CashFlow draws an income and an expense bar per month. It returns nil, nil
// when there is nothing to plot.
func (r *Renderer) CashFlow(buckets []core.MonthBucket) ([]byte, error) {
	bars := make([]chart.Value, 0, len(buckets)*2)
	peak := 0.0
	for _, b := range buckets {
		income := b.Income.InexactFloat64()
		expense := b.Expense.InexactFloat64()
		peak = max(peak, income, expense)
		bars = append(bars,
			chart.Value{
				Label: b.Label,
				Value: income,
				Style: chart.Style{FillColor: color(incomeHex), StrokeColor: color(incomeHex)},
			},
			chart.Value{
				Value: expense,
				Style: chart.Style{FillColor: color(expenseHex), StrokeColor: color(expenseHex)},
			},
		)
	}
	if peak <= 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Title:    "Flujo de caja",
		Width:    r.width,
		Height:   r.height,
		BarWidth: 24,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: peak},
			ValueFormatter: axisAmount,
		},
		Bars: bars,
	}

	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("failed to render cash flow chart: %w", err)
	}
	return buf.Bytes(), nil
}

// TopCategories draws a pie of the category totals. Non-positive totals are
// skipped; nil, nil means nothing was left to draw.
func (r *Renderer) TopCategories(totals []core.CategoryTotal) ([]byte, error) {
	values := make([]chart.Value, 0, len(totals))
	for _, c := range totals {
		if !c.Value.IsPositive() {
			continue
		}
		fill := color(Palette[len(values)%len(Palette)])
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", c.Name, core.FormatAmount(c.Value)),
			Value: c.Value.InexactFloat64(),
			Style: chart.Style{FillColor: fill, StrokeColor: chart.ColorWhite, FontColor: chart.ColorBlack},
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Title:  "Top gastos",
		Width:  r.width,
		Height: r.height,
		Values: values,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
			FillColor: chart.ColorWhite,
		},
	}

	buf := bytes.NewBuffer(nil)
	if err := pie.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
