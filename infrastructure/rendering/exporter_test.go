package rendering

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookExporter_Export(t *testing.T) {
	year := 1980
	view := domain.DashboardView{
		RenderID:  "abc123",
		Selection: domain.ViewSelection{ReportKind: domain.ReportKindYearly, Year: &year},
		Charts:    []domain.ChartDescriptor{lineDescriptor(), groupedDescriptor()},
	}

	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(view, &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumo", "Grafico 1", "Grafico 4"}, f.GetSheetList())

	t.Run("Resumo com a seleção", func(t *testing.T) {
		value, err := f.GetCellValue("Resumo", "B2")
		require.NoError(t, err)
		assert.Equal(t, "abc123", value)

		value, err = f.GetCellValue("Resumo", "B4")
		require.NoError(t, err)
		assert.Equal(t, "1980", value)

		value, err = f.GetCellValue("Resumo", "B8")
		require.NoError(t, err)
		assert.Equal(t, "Effect of Unemployment Rate on Vehicle Type and Sales", value)
	})

	t.Run("Aba de gráfico simples", func(t *testing.T) {
		rows, err := f.GetRows("Grafico 1")
		require.NoError(t, err)
		require.Len(t, rows, 6)
		assert.Equal(t, "Total Monthly Automobile Sales", rows[0][0])
		assert.Equal(t, []string{"Month", "Automobile_Sales"}, rows[2])
		assert.Equal(t, []string{"Feb", "555.9"}, rows[4])
	})

	t.Run("Aba de gráfico agrupado", func(t *testing.T) {
		rows, err := f.GetRows("Grafico 4")
		require.NoError(t, err)
		assert.Equal(t, []string{"Unemployment Rate", "Vehicle_Type", "Average Automobile Sales"}, rows[2])
		assert.Equal(t, []string{"2.0", "Sports", "100"}, rows[3])
	})
}

func TestWorkbookExporter_Export_NoCharts(t *testing.T) {
	view := domain.DashboardView{Selection: domain.ViewSelection{ReportKind: "unknown"}}

	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(view, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumo"}, f.GetSheetList())
}
