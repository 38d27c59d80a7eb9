package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

// Cabeçalho no formato do arquivo publicado, com colunas extras e unemployment_rate em minúsculas
const publishedHeader = "Date,Year,Month,Recession,Consumer_Confidence,Seasonality_Weight,Price," +
	"Advertising_Expenditure,Competition,GDP,Growth_Rate,unemployment_rate,Automobile_Sales,Vehicle_Type,City"

func TestParseSalesRecords(t *testing.T) {
	csvData := publishedHeader + "\n" +
		"1/31/1980,1980,Jan,1,108.24,0.5,27483.57,1558,7,60.223,0.010000,5.4,456,Supperminicar,Georgia\n" +
		"2/29/1980,1980,Feb,1,98.75,0.75,24308.71,3048,4,45.986,-0.309594,4.8,555.9,Supperminicar,New York\n" +
		"3/31/1981,1981,Mar,0,107.48,0.2,28238.38,3137,3,35.141,-0.308614,3.4,620,Mediumfamilycar,Illinois\n"

	records, err := ParseSalesRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.SalesRecord{
		Year:                   1980,
		Month:                  "Jan",
		Recession:              true,
		AutomobileSales:        456,
		VehicleType:            "Supperminicar",
		AdvertisingExpenditure: 1558,
		UnemploymentRate:       5.4,
	}, records[0])
	assert.Equal(t, 555.9, records[1].AutomobileSales)
	assert.False(t, records[2].Recession)
	assert.Equal(t, "Mediumfamilycar", records[2].VehicleType)
}

func TestParseSalesRecords_MinimalSchema(t *testing.T) {
	csvData := "\ufeffYear,Month,Recession,Automobile_Sales,Vehicle_Type,Advertising_Expenditure,Unemployment_Rate\n" +
		"2023, Dec, 0, 100.5, Sports, 10, 3.1\n"

	records, err := ParseSalesRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2023, records[0].Year)
	assert.Equal(t, "Dec", records[0].Month)
	assert.Equal(t, "Sports", records[0].VehicleType)
}

func TestParseSalesRecords_Errors(t *testing.T) {
	const header = "Year,Month,Recession,Automobile_Sales,Vehicle_Type,Advertising_Expenditure,Unemployment_Rate\n"

	tests := []struct {
		name    string
		csvData string
		wantErr error
		wantMsg string
	}{
		{
			name:    "Arquivo vazio",
			csvData: "",
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "Somente cabeçalho",
			csvData: header,
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "Coluna obrigatória ausente",
			csvData: "Year,Month,Recession,Automobile_Sales,Vehicle_Type,Advertising_Expenditure\n1980,Jan,0,1,Sports,1\n",
			wantErr: ErrMissingColumn,
			wantMsg: "Unemployment_Rate",
		},
		{
			name:    "Ano não numérico",
			csvData: header + "abc,Jan,0,1,Sports,1,1\n",
			wantErr: ErrMalformedRow,
			wantMsg: "linha 2",
		},
		{
			name:    "Flag de recessão fora de 0/1",
			csvData: header + "1980,Jan,2,1,Sports,1,1\n",
			wantErr: ErrMalformedRow,
			wantMsg: "Recession",
		},
		{
			name:    "Vendas não numéricas",
			csvData: header + "1980,Jan,0,1,Sports,1,1\n1980,Feb,0,n/a,Sports,1,1\n",
			wantErr: ErrMalformedRow,
			wantMsg: "linha 3",
		},
		{
			name:    "Tipo de veículo vazio",
			csvData: header + "1980,Jan,0,1,,1,1\n",
			wantErr: ErrMalformedRow,
			wantMsg: "Vehicle_Type",
		},
		{
			name:    "Quantidade de campos diferente do cabeçalho",
			csvData: header + "1980,Jan,0\n",
			wantErr: ErrMalformedRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseSalesRecords(strings.NewReader(tt.csvData))
			require.Error(t, err)
			assert.Nil(t, records)
			assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
