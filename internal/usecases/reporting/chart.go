package reporting

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Cores do gráfico
var (
	ColorActual  = drawing.ColorFromHex("e74c3c")
	ColorTarget  = drawing.ColorFromHex("27ae60")
	ColorAverage = drawing.ColorFromHex("f39c12")
)

const (
	barHalfWidth = 0.3
	barAlpha     = 178 // ~70% de opacidade
)

// ChartOptions define as dimensões do PNG final
type ChartOptions struct {
	Year   int
	Width  int // largura de cada painel
	Height int
	DPI    float64
}

// ChartRenderer renderiza o gráfico de dois painéis com go-chart
type ChartRenderer struct {
	opts ChartOptions
}

// NewChartRenderer cria um novo ChartRenderer
func NewChartRenderer(opts ChartOptions) *ChartRenderer {
	return &ChartRenderer{opts: opts}
}

// RenderChart gera o PNG com a tendência trimestral à esquerda e os gaps à direita
func (r *ChartRenderer) RenderChart(records []domain.RetentionRecord, metrics domain.MetricsSummary, gaps []domain.QuarterGap) ([]byte, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(domain.ErrRender, "nenhum registro para desenhar")
	}
	if r.opts.Width <= 0 || r.opts.Height <= 0 || r.opts.DPI <= 0 {
		return nil, errors.Wrapf(domain.ErrRender, "dimensões inválidas: %dx%d @ %v dpi", r.opts.Width, r.opts.Height, r.opts.DPI)
	}

	panelWidth := r.opts.Width

	trend, err := renderPanel(r.trendChart(records, metrics, panelWidth))
	if err != nil {
		return nil, errors.Wrapf(domain.ErrRender, "painel de tendência: %v", err)
	}

	gapPanel, err := renderPanel(r.gapChart(gaps, panelWidth))
	if err != nil {
		return nil, errors.Wrapf(domain.ErrRender, "painel de gaps: %v", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, panelWidth*2, r.opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, trend.Bounds(), trend, trend.Bounds().Min, draw.Over)
	right := trend.Bounds().Add(image.Pt(panelWidth, 0))
	draw.Draw(canvas, right, gapPanel, gapPanel.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, errors.Wrapf(domain.ErrRender, "codificando PNG: %v", err)
	}

	return buf.Bytes(), nil
}

func (r *ChartRenderer) trendChart(records []domain.RetentionRecord, metrics domain.MetricsSummary, width int) chart.Chart {
	scale := r.strokeScale()
	n := float64(len(records))

	xs := make([]float64, 0, len(records))
	ys := make([]float64, 0, len(records))
	ticks := make([]chart.Tick, 0, len(records))
	for i, record := range records {
		x := float64(i + 1)
		xs = append(xs, x)
		ys = append(ys, record.RetentionRate)
		ticks = append(ticks, chart.Tick{Value: x, Label: record.Quarter})
	}

	span := []float64{0.5, n + 0.5}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Quarterly Customer Retention Rate - %d", r.opts.Year),
		Width:  width,
		Height: r.opts.Height,
		DPI:    r.opts.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Quarter",
			Range: &chart.ContinuousRange{Min: span[0], Max: span[1]},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:           "Retention Rate (%)",
			Range:          &chart.ContinuousRange{Min: math.Min(60, metrics.Minimum-5), Max: math.Max(90, metrics.Maximum+5)},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
			GridMajorStyle: chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Actual Retention Rate",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: ColorActual,
					StrokeWidth: 3 * scale,
					DotColor:    ColorActual,
					DotWidth:    4 * scale,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Industry Target (%g%%)", metrics.Target),
				XValues: span,
				YValues: []float64{metrics.Target, metrics.Target},
				Style: chart.Style{
					StrokeColor:     ColorTarget,
					StrokeWidth:     2 * scale,
					StrokeDashArray: []float64{6 * scale, 4 * scale},
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Current Average (%.2f%%)", metrics.Average),
				XValues: span,
				YValues: []float64{metrics.Average, metrics.Average},
				Style: chart.Style{
					StrokeColor:     ColorAverage,
					StrokeWidth:     2 * scale,
					StrokeDashArray: []float64{1.5 * scale, 3 * scale},
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch
}

func (r *ChartRenderer) gapChart(gaps []domain.QuarterGap, width int) chart.Chart {
	n := float64(len(gaps))

	series := make([]chart.Series, 0, len(gaps)+1)
	ticks := make([]chart.Tick, 0, len(gaps))
	labels := make([]chart.Value2, 0, len(gaps))
	low, high := 0.0, 0.0

	for i, gap := range gaps {
		x := float64(i + 1)
		barColor := GapColor(gap.Severity)

		// Cada barra é uma série contínua preenchida até a base do eixo
		series = append(series, chart.ContinuousSeries{
			Name:    gap.Quarter,
			XValues: []float64{x - barHalfWidth, x + barHalfWidth},
			YValues: []float64{gap.Gap, gap.Gap},
			Style: chart.Style{
				StrokeColor: barColor,
				StrokeWidth: 1,
				FillColor:   barColor.WithAlpha(barAlpha),
			},
		})
		ticks = append(ticks, chart.Tick{Value: x, Label: gap.Quarter})
		labels = append(labels, chart.Value2{XValue: x, YValue: gap.Gap, Label: fmt.Sprintf("%.2f%%", gap.Gap)})

		low = math.Min(low, gap.Gap)
		high = math.Max(high, gap.Gap)
	}

	series = append(series, chart.AnnotationSeries{Annotations: labels})

	yMax := high * 1.15
	yMin := low * 1.15
	if yMax <= yMin {
		yMax = yMin + 1
	}

	return chart.Chart{
		Title:  "Gap to Industry Target by Quarter",
		Width:  width,
		Height: r.opts.Height,
		DPI:    r.opts.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Quarter",
			Range: &chart.ContinuousRange{Min: 0.5, Max: n + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:           "Gap to Target (percentage points)",
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
			GridMajorStyle: chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1},
		},
		Series: series,
	}
}

// strokeScale acompanha o DPI para que as linhas não sumam em alta resolução
func (r *ChartRenderer) strokeScale() float64 {
	return math.Max(1, r.opts.DPI/100)
}

// GapColor retorna a cor da barra conforme a severidade do gap
func GapColor(severity domain.GapSeverity) drawing.Color {
	if severity == domain.GapSeverityAlert {
		return ColorActual
	}
	return ColorAverage
}

func renderPanel(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
