// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record_mock.go -package=mocks

const (
	salesRecordTable = "automobile_sales s"
)

// SalesRecordRepository lê o dataset histórico de uma tabela do PostgreSQL.
// O repositório é somente leitura: o dataset nunca é escrito de volta.
type SalesRecordRepository interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

type salesRecordRepository struct {
	conn postgres.Queryer
}

func NewSalesRecordRepository(conn postgres.Queryer) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// listSalesRecordsQuery monta a consulta do dataset completo, ordenado por ano e mês
func listSalesRecordsQuery() (string, []interface{}, error) {
	return squirrel.
		Select(
			"s.year",
			"s.month",
			"s.recession",
			"s.automobile_sales",
			"s.vehicle_type",
			"s.advertising_expenditure",
			"s.unemployment_rate",
		).
		From(salesRecordTable).
		OrderBy("s.year ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRecordRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	sqlQuery, args, err := listSalesRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var (
			record    domain.SalesRecord
			recession int
		)

		err := rows.Scan(
			&record.Year,
			&record.Month,
			&recession,
			&record.AutomobileSales,
			&record.VehicleType,
			&record.AdvertisingExpenditure,
			&record.UnemploymentRate,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de vendas: %w", err)
		}

		record.Recession = recession == 1
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
