package domain

// ChartType é o tipo de gráfico desenhado para um descritor
type ChartType string

const (
	ChartTypeLine ChartType = "line"
	ChartTypeBar  ChartType = "bar"
	ChartTypePie  ChartType = "pie"
)

// Quantidade de gráficos por visão
const ChartsPerView = 4

// GroupedRow é uma linha agregada que alimenta um gráfico.
// Series só é preenchido em gráficos agrupados por duas chaves.
type GroupedRow struct {
	Label  string  `json:"label"`
	Series string  `json:"series,omitempty"`
	Value  float64 `json:"value"`
}

// ChartDescriptor descreve um gráfico derivado do dataset para uma seleção
type ChartDescriptor struct {
	Position    int          `json:"position"` // 1..4, ordem de exibição
	Type        ChartType    `json:"type"`
	Title       string       `json:"title"`
	XField      string       `json:"x_field"`
	YField      string       `json:"y_field"`
	ColorField  string       `json:"color_field,omitempty"`
	XLabel      string       `json:"x_label"`
	YLabel      string       `json:"y_label"`
	Aggregation string       `json:"aggregation"` // "mean" ou "sum"
	Rows        []GroupedRow `json:"rows"`
}

// IsGrouped indica se o gráfico tem uma segunda chave de agrupamento (cor)
func (c ChartDescriptor) IsGrouped() bool {
	return c.ColorField != ""
}

// IsEmpty indica se o gráfico não possui dados
func (c ChartDescriptor) IsEmpty() bool {
	return len(c.Rows) == 0
}

// SeriesNames retorna os nomes de série distintos, na ordem em que aparecem
func (c ChartDescriptor) SeriesNames() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, row := range c.Rows {
		if row.Series == "" || seen[row.Series] {
			continue
		}
		seen[row.Series] = true
		names = append(names, row.Series)
	}
	return names
}

// DashboardView é a resposta de renderização de uma seleção
type DashboardView struct {
	RenderID  string            `json:"render_id"`
	Selection ViewSelection     `json:"selection"`
	Charts    []ChartDescriptor `json:"charts"`
}
