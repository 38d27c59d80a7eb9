package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

var (
	ErrEmptyDataset  = errors.New("dataset is empty")
	ErrMissingColumn = errors.New("required column missing")
	ErrMalformedRow  = errors.New("malformed row")
)

// ParseSalesRecords lê o CSV histórico e converte cada linha em SalesRecord.
// As colunas são localizadas pelo cabeçalho (sem diferenciar maiúsculas);
// colunas extras são ignoradas.
func ParseSalesRecords(r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	// O cabeçalho é a linha 1
	line := 1
	records := make([]domain.SalesRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: %v", line, err)
		}

		record, err := parseRow(row, index)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return records, nil
}

// columnIndex mapeia cada coluna obrigatória para sua posição no cabeçalho
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		// Remove o BOM que alguns exportadores colocam na primeira coluna
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		positions[strings.ToLower(name)] = i
	}

	index := make(map[string]int)
	for _, column := range domain.RequiredColumns() {
		position, exists := positions[strings.ToLower(column)]
		if !exists {
			return nil, errors.Wrap(ErrMissingColumn, column)
		}
		index[column] = position
	}

	return index, nil
}

func parseRow(row []string, index map[string]int) (domain.SalesRecord, error) {
	field := func(column string) (string, error) {
		position := index[column]
		if position >= len(row) {
			return "", errors.Wrapf(ErrMalformedRow, "coluna %s ausente", column)
		}
		return strings.TrimSpace(row[position]), nil
	}

	var record domain.SalesRecord

	yearText, err := field(domain.ColumnYear)
	if err != nil {
		return record, err
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return record, errors.Wrapf(ErrMalformedRow, "coluna %s: %q", domain.ColumnYear, yearText)
	}
	record.Year = year

	month, err := field(domain.ColumnMonth)
	if err != nil {
		return record, err
	}
	if month == "" {
		return record, errors.Wrapf(ErrMalformedRow, "coluna %s vazia", domain.ColumnMonth)
	}
	record.Month = month

	recession, err := parseFloatField(field, domain.ColumnRecession)
	if err != nil {
		return record, err
	}
	if recession != 0 && recession != 1 {
		return record, errors.Wrapf(ErrMalformedRow, "coluna %s deve ser 0 ou 1: %v", domain.ColumnRecession, recession)
	}
	record.Recession = recession == 1

	if record.AutomobileSales, err = parseFloatField(field, domain.ColumnAutomobileSales); err != nil {
		return record, err
	}

	vehicleType, err := field(domain.ColumnVehicleType)
	if err != nil {
		return record, err
	}
	if vehicleType == "" {
		return record, errors.Wrapf(ErrMalformedRow, "coluna %s vazia", domain.ColumnVehicleType)
	}
	record.VehicleType = vehicleType

	if record.AdvertisingExpenditure, err = parseFloatField(field, domain.ColumnAdvertisingExpenditure); err != nil {
		return record, err
	}

	if record.UnemploymentRate, err = parseFloatField(field, domain.ColumnUnemploymentRate); err != nil {
		return record, err
	}

	return record, nil
}

func parseFloatField(field func(string) (string, error), column string) (float64, error) {
	text, err := field(column)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRow, "coluna %s: %q", column, text)
	}

	return value, nil
}
