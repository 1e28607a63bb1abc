package handler

import (
	"context"
	"sort"
	"sync"

	"github.com/ericoliveiras/encomendas-api/internal/database"
	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// memRepository é um Repository em memória com a mesma semântica do Postgres:
// id gerado, PUT sobrescreve tudo e PATCH faz coalesce.
type memRepository struct {
	mu       sync.Mutex
	resource model.Resource
	rows     map[int64]model.Record
	nextID   int64
	calls    int
	err      error
}

func newMemRepository(resource model.Resource) *memRepository {
	return &memRepository{resource: resource, rows: make(map[int64]model.Record), nextID: 1}
}

func (m *memRepository) begin() error {
	m.calls++
	return m.err
}

func (m *memRepository) List(context.Context) ([]model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(m.rows[id]))
	}
	return out, nil
}

func (m *memRepository) Get(_ context.Context, id int64) (model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	rec, ok := m.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return clone(rec), nil
}

func (m *memRepository) Create(_ context.Context, values model.Values) (model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	rec := model.Record{"id": m.nextID}
	for _, f := range m.resource.Fields {
		rec[f.Name] = values[f.Name]
	}
	m.rows[m.nextID] = rec
	m.nextID++
	return clone(rec), nil
}

func (m *memRepository) Replace(_ context.Context, id int64, values model.Values) (model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	rec, ok := m.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	for _, f := range m.resource.Fields {
		rec[f.Name] = values[f.Name]
	}
	return clone(rec), nil
}

func (m *memRepository) Patch(_ context.Context, id int64, values model.Values) (model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	rec, ok := m.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	for _, f := range m.resource.Fields {
		if v := values[f.Name]; v != nil {
			rec[f.Name] = v
		}
	}
	return clone(rec), nil
}

func (m *memRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return err
	}

	if _, ok := m.rows[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func clone(rec model.Record) model.Record {
	out := make(model.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
