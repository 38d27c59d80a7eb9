// Package rendering transforma os descritores de gráfico em imagens e planilhas
package rendering

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/vfg2006/automobile-sales-dashboard/internal/config"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
	"github.com/vfg2006/automobile-sales-dashboard/pkg/utils"
	"github.com/wcharczuk/go-chart/v2"
)

//go:generate mockgen -source=renderer.go -destination=mocks/renderer_mock.go -package=mocks

var ErrEmptyChart = errors.New("chart has no data")

const (
	defaultWidth  = 640
	defaultHeight = 400

	// Quantidade máxima de rótulos no eixo X antes de começar a pular
	maxXLabels = 12
)

type Renderer interface {
	Render(desc domain.ChartDescriptor, format Format, w io.Writer) error
}

type ChartRenderer struct {
	width  int
	height int
}

func NewRenderer(cfg *config.Config) Renderer {
	width, height := cfg.Chart.Width, cfg.Chart.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	return &ChartRenderer{
		width:  width,
		height: height,
	}
}

func (r *ChartRenderer) Render(desc domain.ChartDescriptor, format Format, w io.Writer) error {
	if desc.IsEmpty() {
		return ErrEmptyChart
	}

	var provider chart.RendererProvider
	switch format {
	case FormatSVG, "":
		provider = chart.SVG
	case FormatPNG:
		provider = chart.PNG
	default:
		return ErrUnsupportedFormat
	}

	var err error
	switch {
	case desc.Type == domain.ChartTypeLine && len(desc.Rows) == 1:
		// Uma série contínua precisa de dois valores de X; um ponto único vira barra
		err = r.barChart(desc).Render(provider, w)
	case desc.Type == domain.ChartTypeLine:
		err = r.lineChart(desc).Render(provider, w)
	case desc.Type == domain.ChartTypeBar && desc.IsGrouped():
		err = r.stackedBarChart(desc).Render(provider, w)
	case desc.Type == domain.ChartTypeBar:
		err = r.barChart(desc).Render(provider, w)
	case desc.Type == domain.ChartTypePie:
		var pie chart.PieChart
		if pie, err = r.pieChart(desc); err == nil {
			err = pie.Render(provider, w)
		}
	default:
		return fmt.Errorf("tipo de gráfico desconhecido: %q", desc.Type)
	}

	if err != nil {
		return fmt.Errorf("erro ao renderizar o gráfico %d: %w", desc.Position, err)
	}

	return nil
}

// lineChart desenha as categorias nas posições 0..n-1 com rótulos explícitos no eixo X
func (r *ChartRenderer) lineChart(desc domain.ChartDescriptor) chart.Chart {
	n := len(desc.Rows)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, row := range desc.Rows {
		xs[i] = float64(i)
		ys[i] = row.Value
	}

	ticks := make([]chart.Tick, 0, n)
	step := int(math.Ceil(float64(n) / maxXLabels))
	for i, row := range desc.Rows {
		label := ""
		if i%step == 0 {
			label = row.Label
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}

	yMax := axisMax(ys)
	graph := chart.Chart{
		Title:      desc.Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  desc.XLabel,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  desc.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: valueTicks(yMax),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    desc.YLabel,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
					DotColor:    chart.GetDefaultColor(0),
					DotWidth:    3,
				},
			},
		},
	}

	return graph
}

func (r *ChartRenderer) barChart(desc domain.ChartDescriptor) chart.BarChart {
	bars := make([]chart.Value, 0, len(desc.Rows))
	values := make([]float64, 0, len(desc.Rows))
	for i, row := range desc.Rows {
		color := chart.GetDefaultColor(i)
		bars = append(bars, chart.Value{
			Label: row.Label,
			Value: row.Value,
			Style: chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
		})
		values = append(values, row.Value)
	}

	yMax := axisMax(values)
	return chart.BarChart{
		Title:      desc.Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 16}},
		XAxis:      categoryAxisStyle(len(bars)),
		BarWidth:   r.barWidth(len(bars)),
		YAxis: chart.YAxis{
			Name:  desc.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: valueTicks(yMax),
		},
		Bars: bars,
	}
}

// stackedBarChart empilha as séries de cada categoria, com uma cor fixa por série
func (r *ChartRenderer) stackedBarChart(desc domain.ChartDescriptor) chart.StackedBarChart {
	colors := make(map[string]int)
	for i, name := range desc.SeriesNames() {
		colors[name] = i
	}

	bars := make([]chart.StackedBar, 0)
	index := make(map[string]int)
	for _, row := range desc.Rows {
		position, exists := index[row.Label]
		if !exists {
			position = len(bars)
			index[row.Label] = position
			bars = append(bars, chart.StackedBar{Name: row.Label})
		}

		color := chart.GetDefaultColor(colors[row.Series])
		bars[position].Values = append(bars[position].Values, chart.Value{
			Label: row.Series,
			Value: row.Value,
			Style: chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
		})
	}

	width := r.barWidth(len(bars))
	for i := range bars {
		bars[i].Width = width
	}

	return chart.StackedBarChart{
		Title:      desc.Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 16}},
		XAxis:      categoryAxisStyle(len(bars)),
		BarSpacing: r.barSpacing(len(bars), width),
		Bars:       bars,
	}
}

func (r *ChartRenderer) pieChart(desc domain.ChartDescriptor) (chart.PieChart, error) {
	values := make([]chart.Value, 0, len(desc.Rows))
	var total float64
	for _, row := range desc.Rows {
		total += row.Value
		values = append(values, chart.Value{Label: row.Label, Value: row.Value})
	}

	// Fatias sem área não formam um gráfico
	if total <= 0 {
		return chart.PieChart{}, ErrEmptyChart
	}

	return chart.PieChart{
		Title:  desc.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}, nil
}

// categoryAxisStyle esconde os rótulos do eixo X quando as barras ficam estreitas demais para eles.
// Rótulos que não cabem na largura da barra são quebrados em linhas e consomem a altura do canvas.
func categoryAxisStyle(bars int) chart.Style {
	return chart.Style{Hidden: bars > maxXLabels}
}

// barWidth divide a largura útil entre as barras, reservando 30% para espaçamento
func (r *ChartRenderer) barWidth(bars int) int {
	available := r.width - 120
	if bars <= 0 || available <= 0 {
		return 1
	}

	width := available * 7 / (10 * bars)
	if width > 50 {
		width = 50
	}
	if width < 1 {
		width = 1
	}
	return width
}

func (r *ChartRenderer) barSpacing(bars, width int) int {
	available := r.width - 120
	if bars <= 0 {
		return 1
	}

	spacing := (available - bars*width) / bars
	if spacing > 40 {
		spacing = 40
	}
	if spacing < 1 {
		spacing = 1
	}
	return spacing
}

// axisMax arredonda o maior valor para cima, garantindo um eixo com altura positiva
func axisMax(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return 1
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(max)))
	for _, factor := range []float64{1, 2, 2.5, 5, 10} {
		if candidate := factor * magnitude; candidate >= max {
			return candidate
		}
	}
	return 10 * magnitude
}

func valueTicks(max float64) []chart.Tick {
	const count = 5

	ticks := make([]chart.Tick, 0, count+1)
	step := max / count
	for i := 0; i <= count; i++ {
		value := step * float64(i)
		ticks = append(ticks, chart.Tick{
			Value: value,
			Label: strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(value), 'f', -1, 64),
		})
	}
	return ticks
}
