package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

func TestListSalesRecordsQuery(t *testing.T) {
	query, args, err := listSalesRecordsQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT s.year, s.month, s.recession, s.automobile_sales, s.vehicle_type, "+
			"s.advertising_expenditure, s.unemployment_rate FROM automobile_sales s "+
			"ORDER BY s.year ASC, s.id ASC",
		query,
	)
	assert.Empty(t, args)
}

// scanColumns casa as sete colunas escaneadas por registro
func scanColumns() []any {
	matchers := make([]any, 7)
	for i := range matchers {
		matchers[i] = gomock.Any()
	}
	return matchers
}

// scanInto preenche os destinos do Scan como o driver faria
func scanInto(record domain.SalesRecord, recession int) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = record.Year
		*dest[1].(*string) = record.Month
		*dest[2].(*int) = recession
		*dest[3].(*float64) = record.AutomobileSales
		*dest[4].(*string) = record.VehicleType
		*dest[5].(*float64) = record.AdvertisingExpenditure
		*dest[6].(*float64) = record.UnemploymentRate
		return nil
	}
}

func TestSalesRecordRepository_ListSalesRecords(t *testing.T) {
	expectedQuery, _, err := listSalesRecordsQuery()
	require.NoError(t, err)

	recessionRecord := domain.SalesRecord{
		Year:                   1980,
		Month:                  "Jan",
		Recession:              true,
		AutomobileSales:        1500.5,
		VehicleType:            "Supperminicar",
		AdvertisingExpenditure: 1200,
		UnemploymentRate:       7.1,
	}
	regularRecord := domain.SalesRecord{
		Year:                   1981,
		Month:                  "Feb",
		Recession:              false,
		AutomobileSales:        2100,
		VehicleType:            "Sports",
		AdvertisingExpenditure: 3100,
		UnemploymentRate:       2.4,
	}

	tests := []struct {
		name        string
		setupMocks  func(queryer *mocks.MockQueryer, rows *mocks.MockRows)
		expected    []domain.SalesRecord
		expectedErr string
	}{
		{
			name: "Lista registros convertendo a coluna de recessão",
			setupMocks: func(queryer *mocks.MockQueryer, rows *mocks.MockRows) {
				queryer.EXPECT().Query(gomock.Any(), expectedQuery).Return(rows, nil)
				gomock.InOrder(
					rows.EXPECT().Next().Return(true),
					rows.EXPECT().Scan(scanColumns()...).DoAndReturn(scanInto(recessionRecord, 1)),
					rows.EXPECT().Next().Return(true),
					rows.EXPECT().Scan(scanColumns()...).DoAndReturn(scanInto(regularRecord, 0)),
					rows.EXPECT().Next().Return(false),
					rows.EXPECT().Err().Return(nil),
				)
				rows.EXPECT().Close().Return(nil)
			},
			expected: []domain.SalesRecord{recessionRecord, regularRecord},
		},
		{
			name: "Tabela vazia retorna lista vazia",
			setupMocks: func(queryer *mocks.MockQueryer, rows *mocks.MockRows) {
				queryer.EXPECT().Query(gomock.Any(), expectedQuery).Return(rows, nil)
				rows.EXPECT().Next().Return(false)
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close().Return(nil)
			},
			expected: []domain.SalesRecord{},
		},
		{
			name: "Erro ao executar a query",
			setupMocks: func(queryer *mocks.MockQueryer, rows *mocks.MockRows) {
				queryer.EXPECT().Query(gomock.Any(), expectedQuery).Return(nil, errors.New("conexão recusada"))
			},
			expectedErr: "erro ao executar a query: conexão recusada",
		},
		{
			name: "Erro ao escanear registro",
			setupMocks: func(queryer *mocks.MockQueryer, rows *mocks.MockRows) {
				queryer.EXPECT().Query(gomock.Any(), expectedQuery).Return(rows, nil)
				rows.EXPECT().Next().Return(true)
				rows.EXPECT().Scan(scanColumns()...).Return(errors.New("tipo inválido"))
				rows.EXPECT().Close().Return(nil)
			},
			expectedErr: "erro ao escanear registro de vendas: tipo inválido",
		},
		{
			name: "Erro durante a iteração",
			setupMocks: func(queryer *mocks.MockQueryer, rows *mocks.MockRows) {
				queryer.EXPECT().Query(gomock.Any(), expectedQuery).Return(rows, nil)
				rows.EXPECT().Next().Return(false)
				rows.EXPECT().Err().Return(errors.New("conexão perdida"))
				rows.EXPECT().Close().Return(nil)
			},
			expectedErr: "erro durante a iteração de linhas: conexão perdida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			queryer := mocks.NewMockQueryer(ctrl)
			rows := mocks.NewMockRows(ctrl)
			tt.setupMocks(queryer, rows)

			repo := NewSalesRecordRepository(queryer)
			records, err := repo.ListSalesRecords(context.Background())

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, records)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}
