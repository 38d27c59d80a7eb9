package dashboarding

import "errors"

var (
	// ErrChartNotFound indica que a seleção não produz gráfico na posição pedida
	ErrChartNotFound = errors.New("chart not found for selection")
)
