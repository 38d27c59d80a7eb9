package dashboarding

import (
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboard_mock.go -package=mocks

// Dashboard define os handlers reativos do dashboard de vendas de automóveis
type Dashboard interface {
	// Options retorna as opções e valores iniciais dos dropdowns
	Options() domain.DashboardOptions

	// SetReportKind retorna a visibilidade do seletor de ano para o tipo de relatório escolhido
	SetReportKind(kind domain.ReportKind) domain.YearSelectorState

	// Render retorna os gráficos da seleção, na ordem de exibição
	Render(selection domain.ViewSelection) []domain.ChartDescriptor

	// Chart retorna o gráfico de uma posição (1..4) da seleção
	Chart(selection domain.ViewSelection, position int) (*domain.ChartDescriptor, error)
}
