package postgres

import (
	"context"
)

//go:generate mockgen -source=queryer.go -destination=mocks/queryer_mock.go -package=mocks

// Rows é o subconjunto de *sql.Rows usado pelos repositórios
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Close() error
	Err() error
}

type Queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (Rows, error)
}
