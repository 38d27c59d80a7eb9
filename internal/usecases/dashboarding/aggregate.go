package dashboarding

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

// aggregation é a função de agregação aplicada a cada grupo
type aggregation string

const (
	aggregationMean aggregation = "mean"
	aggregationSum  aggregation = "sum"
)

// Ordem de calendário dos rótulos de mês usados no dataset
var monthOrder = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Estrutura para acumular os valores de um grupo
type groupAccumulator struct {
	sum   float64
	count int
}

func (g groupAccumulator) result(agg aggregation) float64 {
	if agg == aggregationMean {
		if g.count == 0 {
			return 0
		}
		return g.sum / float64(g.count)
	}
	return g.sum
}

// groupKey identifica um grupo por até duas chaves
type groupKey struct {
	label  string
	series string
}

// groupBy agrega value por label (e series, quando informado) e devolve as linhas ordenadas
func groupBy(
	records []domain.SalesRecord,
	label func(domain.SalesRecord) string,
	series func(domain.SalesRecord) string,
	value func(domain.SalesRecord) float64,
	agg aggregation,
	less func(a, b string) bool,
) []domain.GroupedRow {
	groups := make(map[groupKey]*groupAccumulator)
	for _, record := range records {
		key := groupKey{label: label(record)}
		if series != nil {
			key.series = series(record)
		}

		acc, exists := groups[key]
		if !exists {
			acc = &groupAccumulator{}
			groups[key] = acc
		}
		acc.sum += value(record)
		acc.count++
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].label != keys[j].label {
			return less(keys[i].label, keys[j].label)
		}
		return keys[i].series < keys[j].series
	})

	rows := make([]domain.GroupedRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, domain.GroupedRow{
			Label:  key.label,
			Series: key.series,
			Value:  groups[key].result(agg),
		})
	}

	return rows
}

func filterRecords(records []domain.SalesRecord, keep func(domain.SalesRecord) bool) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0)
	for _, record := range records {
		if keep(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Extratores de chave e valor

func byYear(r domain.SalesRecord) string        { return strconv.Itoa(r.Year) }
func byMonth(r domain.SalesRecord) string       { return r.Month }
func byVehicleType(r domain.SalesRecord) string { return r.VehicleType }
func byUnemploymentRate(r domain.SalesRecord) string {
	return strconv.FormatFloat(r.UnemploymentRate, 'f', -1, 64)
}

func automobileSales(r domain.SalesRecord) float64        { return r.AutomobileSales }
func advertisingExpenditure(r domain.SalesRecord) float64 { return r.AdvertisingExpenditure }

// Comparadores de rótulo

func lessText(a, b string) bool { return a < b }

// lessNumeric compara rótulos numéricos; rótulos não numéricos vão para o fim em ordem textual
func lessNumeric(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		return fa < fb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// lessMonth ordena meses pelo calendário; rótulos desconhecidos vão para o fim em ordem textual
func lessMonth(a, b string) bool {
	ma, okA := monthOrder[monthKey(a)]
	mb, okB := monthOrder[monthKey(b)]
	switch {
	case okA && okB:
		return ma < mb
	case okA:
		return true
	case okB:
		return false
	default:
		return a < b
	}
}

func monthKey(month string) string {
	month = strings.ToLower(strings.TrimSpace(month))
	if len(month) > 3 {
		month = month[:3]
	}
	return month
}
