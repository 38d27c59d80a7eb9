package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

var (
	errMissingReportKind = errors.New("report_kind é obrigatório")
	errInvalidYear       = fmt.Errorf("year deve ser um inteiro entre %d e %d", domain.FirstYear, domain.LastYear)
)

// parseSelection lê report_kind e year da query string.
// Um report_kind desconhecido não é erro: a seleção apenas não produz gráficos.
func parseSelection(query url.Values) (domain.ViewSelection, error) {
	kind := strings.TrimSpace(query.Get("report_kind"))
	if kind == "" {
		return domain.ViewSelection{}, errMissingReportKind
	}

	selection := domain.ViewSelection{ReportKind: domain.ReportKind(kind)}

	yearText := strings.TrimSpace(query.Get("year"))
	if yearText == "" {
		return selection, nil
	}

	year, err := strconv.Atoi(yearText)
	if err != nil || !domain.YearInRange(year) {
		return selection, errInvalidYear
	}
	selection.Year = &year

	return selection, nil
}
