package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// ErrNotFound indica que a instrução rodou mas nenhuma linha casou com o id.
var ErrNotFound = errors.New("não encontrado")

// Repository traduz cada operação de um recurso em exatamente uma instrução SQL.
type Repository struct {
	resource model.Resource
	exec     Executor
}

func NewRepository(resource model.Resource, exec Executor) *Repository {
	return &Repository{resource: resource, exec: exec}
}

func (r *Repository) List(ctx context.Context) ([]model.Record, error) {
	stmt := fmt.Sprintf(`SELECT * FROM %s ORDER BY "id" DESC`, quote(r.resource.Table))
	res, err := r.exec.Execute(ctx, stmt)
	if err != nil {
		return nil, errors.Wrapf(err, "listar %s", r.resource.Name)
	}
	return res.Rows, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (model.Record, error) {
	stmt := fmt.Sprintf(`SELECT * FROM %s WHERE "id" = $1`, quote(r.resource.Table))
	res, err := r.exec.Execute(ctx, stmt, id)
	if err != nil {
		return nil, errors.Wrapf(err, "buscar %s %d", r.resource.Name, id)
	}
	return first(res)
}

func (r *Repository) Create(ctx context.Context, values model.Values) (model.Record, error) {
	cols := make([]string, 0, len(r.resource.Fields))
	marks := make([]string, 0, len(r.resource.Fields))
	args := make([]any, 0, len(r.resource.Fields))
	for i, f := range r.resource.Fields {
		cols = append(cols, quote(f.Name))
		marks = append(marks, fmt.Sprintf("$%d", i+1))
		args = append(args, values[f.Name])
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		quote(r.resource.Table), strings.Join(cols, ", "), strings.Join(marks, ", "))
	res, err := r.exec.Execute(ctx, stmt, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "criar %s", r.resource.Name)
	}
	return first(res)
}

// Replace sobrescreve todas as colunas graváveis; opcionais ausentes viram NULL.
func (r *Repository) Replace(ctx context.Context, id int64, values model.Values) (model.Record, error) {
	return r.update(ctx, id, values, func(col, mark string) string {
		return fmt.Sprintf("%s = %s", col, mark)
	})
}

// Patch aplica só os campos enviados; para os demais o COALESCE mantém o valor gravado.
func (r *Repository) Patch(ctx context.Context, id int64, values model.Values) (model.Record, error) {
	return r.update(ctx, id, values, func(col, mark string) string {
		return fmt.Sprintf("%s = COALESCE(%s, %s)", col, mark, col)
	})
}

func (r *Repository) update(ctx context.Context, id int64, values model.Values, assign func(col, mark string) string) (model.Record, error) {
	sets := make([]string, 0, len(r.resource.Fields)+1)
	args := make([]any, 0, len(r.resource.Fields)+1)
	for i, f := range r.resource.Fields {
		sets = append(sets, assign(quote(f.Name), fmt.Sprintf("$%d", i+1)))
		args = append(args, values[f.Name])
	}
	if r.resource.TouchColumn != "" {
		sets = append(sets, quote(r.resource.TouchColumn)+" = CURRENT_TIMESTAMP")
	}
	args = append(args, id)

	stmt := fmt.Sprintf(`UPDATE %s SET %s WHERE "id" = $%d RETURNING *`,
		quote(r.resource.Table), strings.Join(sets, ", "), len(args))
	res, err := r.exec.Execute(ctx, stmt, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "atualizar %s %d", r.resource.Name, id)
	}
	return first(res)
}

// Delete remove a linha e usa a contagem devolvida para saber se ela existia.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	stmt := fmt.Sprintf(`DELETE FROM %s WHERE "id" = $1 RETURNING "id"`, quote(r.resource.Table))
	res, err := r.exec.Execute(ctx, stmt, id)
	if err != nil {
		return errors.Wrapf(err, "remover %s %d", r.resource.Name, id)
	}
	if res.RowCount == 0 {
		return ErrNotFound
	}
	return nil
}

func first(res Result) (model.Record, error) {
	if len(res.Rows) == 0 {
		return nil, ErrNotFound
	}
	return res.Rows[0], nil
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
