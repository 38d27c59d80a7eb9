// Package dashboarding implementa o controlador de visão do dashboard de vendas de automóveis
package dashboarding

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

// Rótulos das opções do dropdown de relatório
const (
	yearlyStatisticsLabel    = "Yearly Statistics"
	recessionStatisticsLabel = "Recession Period Statistics"
)

// Service mantém o dataset em memória e calcula os gráficos de cada seleção.
// O dataset é somente leitura após a criação, portanto o Service pode ser usado
// por várias requisições ao mesmo tempo.
type Service struct {
	records []domain.SalesRecord
}

// NewService cria o controlador de visão a partir do dataset carregado
func NewService(records []domain.SalesRecord) Dashboard {
	// Cópia própria para que ninguém altere o dataset depois da carga
	owned := make([]domain.SalesRecord, len(records))
	copy(owned, records)

	logrus.WithFields(logrus.Fields{
		"records": len(owned),
	}).Info("dashboard: dataset carregado no controlador de visão")

	return &Service{records: owned}
}

func (s *Service) Options() domain.DashboardOptions {
	years := make([]int, 0, domain.LastYear-domain.FirstYear+1)
	for year := domain.FirstYear; year <= domain.LastYear; year++ {
		years = append(years, year)
	}

	return domain.DashboardOptions{
		ReportKinds: []domain.DropdownOption{
			{Label: yearlyStatisticsLabel, Value: string(domain.ReportKindYearly)},
			{Label: recessionStatisticsLabel, Value: string(domain.ReportKindRecession)},
		},
		Years:             years,
		DefaultReportKind: domain.ReportKindYearly,
		DefaultYear:       domain.FirstYear,
	}
}

func (s *Service) SetReportKind(kind domain.ReportKind) domain.YearSelectorState {
	if kind == domain.ReportKindYearly {
		return domain.YearSelectorState{Visible: true, Display: "block"}
	}
	return domain.YearSelectorState{Visible: false, Display: "none"}
}

func (s *Service) Render(selection domain.ViewSelection) []domain.ChartDescriptor {
	switch {
	case selection.ReportKind == domain.ReportKindRecession:
		return s.recessionCharts()
	case selection.ReportKind == domain.ReportKindYearly && selection.HasYear():
		return s.yearlyCharts(*selection.Year)
	default:
		logrus.WithField("selection", selection.String()).Debug("dashboard: seleção sem gráficos")
		return []domain.ChartDescriptor{}
	}
}

func (s *Service) Chart(selection domain.ViewSelection, position int) (*domain.ChartDescriptor, error) {
	charts := s.Render(selection)
	if position < 1 || position > len(charts) {
		return nil, fmt.Errorf("%w: %s posição %d", ErrChartNotFound, selection.String(), position)
	}

	chart := charts[position-1]
	return &chart, nil
}

// recessionCharts calcula os gráficos dos períodos de recessão
func (s *Service) recessionCharts() []domain.ChartDescriptor {
	recession := filterRecords(s.records, func(r domain.SalesRecord) bool {
		return r.Recession
	})

	return []domain.ChartDescriptor{
		{
			Position:    1,
			Type:        domain.ChartTypeLine,
			Title:       "Average Automobile Sales fluctuation over Recession Period",
			XField:      domain.ColumnYear,
			YField:      domain.ColumnAutomobileSales,
			XLabel:      domain.ColumnYear,
			YLabel:      domain.ColumnAutomobileSales,
			Aggregation: string(aggregationMean),
			Rows:        groupBy(recession, byYear, nil, automobileSales, aggregationMean, lessNumeric),
		},
		{
			Position:    2,
			Type:        domain.ChartTypeBar,
			Title:       "Average Vehicles Sold by Vehicle Type during Recession",
			XField:      domain.ColumnVehicleType,
			YField:      domain.ColumnAutomobileSales,
			XLabel:      domain.ColumnVehicleType,
			YLabel:      domain.ColumnAutomobileSales,
			Aggregation: string(aggregationMean),
			Rows:        groupBy(recession, byVehicleType, nil, automobileSales, aggregationMean, lessText),
		},
		{
			Position:    3,
			Type:        domain.ChartTypePie,
			Title:       "Total Expenditure Share by Vehicle Type During Recession",
			XField:      domain.ColumnVehicleType,
			YField:      domain.ColumnAdvertisingExpenditure,
			XLabel:      domain.ColumnVehicleType,
			YLabel:      domain.ColumnAdvertisingExpenditure,
			Aggregation: string(aggregationSum),
			Rows:        groupBy(recession, byVehicleType, nil, advertisingExpenditure, aggregationSum, lessText),
		},
		{
			Position:    4,
			Type:        domain.ChartTypeBar,
			Title:       "Effect of Unemployment Rate on Vehicle Type and Sales",
			XField:      domain.ColumnUnemploymentRate,
			YField:      domain.ColumnAutomobileSales,
			ColorField:  domain.ColumnVehicleType,
			XLabel:      "Unemployment Rate",
			YLabel:      "Average Automobile Sales",
			Aggregation: string(aggregationMean),
			Rows: groupBy(recession, byUnemploymentRate, byVehicleType, automobileSales,
				aggregationMean, lessNumeric),
		},
	}
}

// yearlyCharts calcula os gráficos de um ano; a tendência anual usa o dataset completo
func (s *Service) yearlyCharts(year int) []domain.ChartDescriptor {
	yearly := filterRecords(s.records, func(r domain.SalesRecord) bool {
		return r.Year == year
	})

	logrus.WithFields(logrus.Fields{
		"year":    year,
		"records": len(yearly),
	}).Debug("dashboard: registros filtrados para o ano")

	return []domain.ChartDescriptor{
		{
			Position:    1,
			Type:        domain.ChartTypeLine,
			Title:       "Yearly Automobile Sales Trend",
			XField:      domain.ColumnYear,
			YField:      domain.ColumnAutomobileSales,
			XLabel:      domain.ColumnYear,
			YLabel:      domain.ColumnAutomobileSales,
			Aggregation: string(aggregationMean),
			Rows:        groupBy(s.records, byYear, nil, automobileSales, aggregationMean, lessNumeric),
		},
		{
			Position:    2,
			Type:        domain.ChartTypeLine,
			Title:       "Total Monthly Automobile Sales",
			XField:      domain.ColumnMonth,
			YField:      domain.ColumnAutomobileSales,
			XLabel:      domain.ColumnMonth,
			YLabel:      domain.ColumnAutomobileSales,
			Aggregation: string(aggregationSum),
			Rows:        groupBy(yearly, byMonth, nil, automobileSales, aggregationSum, lessMonth),
		},
		{
			Position:    3,
			Type:        domain.ChartTypeBar,
			Title:       fmt.Sprintf("Average Vehicles Sold by Vehicle Type in %d", year),
			XField:      domain.ColumnVehicleType,
			YField:      domain.ColumnAutomobileSales,
			XLabel:      domain.ColumnVehicleType,
			YLabel:      domain.ColumnAutomobileSales,
			Aggregation: string(aggregationMean),
			Rows:        groupBy(yearly, byVehicleType, nil, automobileSales, aggregationMean, lessText),
		},
		{
			Position:    4,
			Type:        domain.ChartTypePie,
			Title:       fmt.Sprintf("Total Advertisement Expenditure by Vehicle Type in %d", year),
			XField:      domain.ColumnVehicleType,
			YField:      domain.ColumnAdvertisingExpenditure,
			XLabel:      domain.ColumnVehicleType,
			YLabel:      domain.ColumnAdvertisingExpenditure,
			Aggregation: string(aggregationSum),
			Rows:        groupBy(yearly, byVehicleType, nil, advertisingExpenditure, aggregationSum, lessText),
		},
	}
}
