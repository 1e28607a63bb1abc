package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// Result é o que uma instrução devolve: as linhas e quantas foram.
// Toda instrução de escrita usa RETURNING, então RowCount também é o número de linhas afetadas.
type Result struct {
	Rows     []model.Record
	RowCount int
}

// Executor executa uma única instrução parametrizada.
type Executor interface {
	Execute(ctx context.Context, statement string, args ...any) (Result, error)
}

// SQLExecutor é o Executor sobre o pool do Postgres.
type SQLExecutor struct {
	db *sqlx.DB
}

// NewSQLExecutor reaproveita o *sql.DB aberto pelo GORM.
func NewSQLExecutor(db *gorm.DB) (*SQLExecutor, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "obter *sql.DB do gorm")
	}
	// O driver do gorm/postgres é o pgx; o nome só define o estilo de bindvar do sqlx.
	return &SQLExecutor{db: sqlx.NewDb(sqlDB, "pgx")}, nil
}

func (e *SQLExecutor) Execute(ctx context.Context, statement string, args ...any) (Result, error) {
	rows, err := e.db.QueryxContext(ctx, statement, args...)
	if err != nil {
		return Result{}, errors.Wrap(err, "executar instrução")
	}
	defer rows.Close()

	res := Result{Rows: []model.Record{}}
	for rows.Next() {
		rec := make(map[string]any)
		if err := rows.MapScan(rec); err != nil {
			return Result{}, errors.Wrap(err, "ler linha")
		}
		for col, v := range rec {
			if b, ok := v.([]byte); ok {
				rec[col] = string(b)
			}
		}
		res.Rows = append(res.Rows, model.Record(rec))
	}
	if err := rows.Err(); err != nil {
		return Result{}, errors.Wrap(err, "percorrer linhas")
	}

	res.RowCount = len(res.Rows)
	return res, nil
}
