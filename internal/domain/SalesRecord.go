package domain

// Colunas do CSV histórico de vendas de automóveis
const (
	ColumnYear                   = "Year"
	ColumnMonth                  = "Month"
	ColumnRecession              = "Recession"
	ColumnAutomobileSales        = "Automobile_Sales"
	ColumnVehicleType            = "Vehicle_Type"
	ColumnAdvertisingExpenditure = "Advertising_Expenditure"
	ColumnUnemploymentRate       = "Unemployment_Rate"
)

// SalesRecord representa uma linha do dataset histórico de vendas.
// É carregado uma única vez na inicialização e nunca é alterado.
type SalesRecord struct {
	Year                   int     `json:"year"`
	Month                  string  `json:"month"`
	Recession              bool    `json:"recession"`
	AutomobileSales        float64 `json:"automobile_sales"`
	VehicleType            string  `json:"vehicle_type"`
	AdvertisingExpenditure float64 `json:"advertising_expenditure"`
	UnemploymentRate       float64 `json:"unemployment_rate"`
}

// RequiredColumns retorna as colunas obrigatórias do dataset, na ordem do esquema
func RequiredColumns() []string {
	return []string{
		ColumnYear,
		ColumnMonth,
		ColumnRecession,
		ColumnAutomobileSales,
		ColumnVehicleType,
		ColumnAdvertisingExpenditure,
		ColumnUnemploymentRate,
	}
}
