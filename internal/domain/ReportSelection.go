package domain

import "strconv"

// ReportKind é o modo do dashboard escolhido pelo usuário
type ReportKind string

const (
	ReportKindYearly    ReportKind = "yearly"
	ReportKindRecession ReportKind = "recession"
)

// Intervalo de anos oferecido no seletor
const (
	FirstYear = 1980
	LastYear  = 2023
)

// IsValid indica se o tipo de relatório é conhecido
func (k ReportKind) IsValid() bool {
	return k == ReportKindYearly || k == ReportKindRecession
}

// ViewSelection é o par (tipo de relatório, ano) vindo dos dropdowns.
// Year é nil quando nenhum ano foi selecionado.
type ViewSelection struct {
	ReportKind ReportKind `json:"report_kind"`
	Year       *int       `json:"year,omitempty"`
}

// HasYear indica se um ano foi selecionado
func (s ViewSelection) HasYear() bool {
	return s.Year != nil
}

func (s ViewSelection) String() string {
	if s.Year == nil {
		return string(s.ReportKind)
	}
	return string(s.ReportKind) + "/" + strconv.Itoa(*s.Year)
}

// YearInRange verifica se o ano está dentro do intervalo oferecido no seletor
func YearInRange(year int) bool {
	return year >= FirstYear && year <= LastYear
}

// YearSelectorState representa a visibilidade do container do seletor de ano
type YearSelectorState struct {
	Visible bool   `json:"visible"`
	Display string `json:"display"` // "block" ou "none", pronto para o style do container
}

// DropdownOption é uma opção de um dropdown do dashboard
type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardOptions contém as opções e valores iniciais dos dropdowns
type DashboardOptions struct {
	ReportKinds       []DropdownOption `json:"report_kinds"`
	Years             []int            `json:"years"`
	DefaultReportKind ReportKind       `json:"default_report_kind"`
	DefaultYear       int              `json:"default_year"`
}
