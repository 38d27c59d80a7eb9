package rendering

import (
	"fmt"
	"io"

	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

//go:generate mockgen -source=exporter.go -destination=mocks/exporter_mock.go -package=mocks

const summarySheet = "Resumo"

type Exporter interface {
	Export(view domain.DashboardView, w io.Writer) error
}

type WorkbookExporter struct{}

func NewExporter() Exporter {
	return &WorkbookExporter{}
}

// Export grava uma planilha com uma aba de resumo e uma aba por gráfico
func (e *WorkbookExporter) Export(view domain.DashboardView, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("erro ao renomear a aba de resumo: %w", err)
	}

	if err := writeSummary(f, view); err != nil {
		return err
	}

	for _, desc := range view.Charts {
		if err := writeChartSheet(f, desc); err != nil {
			return fmt.Errorf("erro ao exportar o gráfico %d: %w", desc.Position, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar a planilha: %w", err)
	}

	return nil
}

// ChartSheetName é o nome da aba que recebe as linhas de um gráfico
func ChartSheetName(position int) string {
	return fmt.Sprintf("Grafico %d", position)
}

func writeSummary(f *excelize.File, view domain.DashboardView) error {
	year := ""
	if view.Selection.HasYear() {
		year = fmt.Sprint(*view.Selection.Year)
	}

	cells := map[string]any{
		"A1": "Automobile Sales Dashboard",
		"A2": "Render ID",
		"B2": view.RenderID,
		"A3": "Report",
		"B3": string(view.Selection.ReportKind),
		"A4": "Year",
		"B4": year,
		"A6": "Chart",
		"B6": "Title",
		"C6": "Type",
	}
	for cell, value := range cells {
		if err := f.SetCellValue(summarySheet, cell, value); err != nil {
			return err
		}
	}

	for i, desc := range view.Charts {
		row := 7 + i
		if err := setRow(f, summarySheet, row, ChartSheetName(desc.Position), desc.Title, string(desc.Type)); err != nil {
			return err
		}
	}

	return f.SetColWidth(summarySheet, "A", "C", 28)
}

func writeChartSheet(f *excelize.File, desc domain.ChartDescriptor) error {
	sheet := ChartSheetName(desc.Position)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", desc.Title); err != nil {
		return err
	}

	header := []any{desc.XLabel}
	if desc.IsGrouped() {
		header = append(header, desc.ColorField)
	}
	header = append(header, desc.YLabel)
	if err := setRow(f, sheet, 3, header...); err != nil {
		return err
	}

	for i, groupedRow := range desc.Rows {
		values := []any{groupedRow.Label}
		if desc.IsGrouped() {
			values = append(values, groupedRow.Series)
		}
		values = append(values, groupedRow.Value)

		if err := setRow(f, sheet, 4+i, values...); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "C", 24)
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
