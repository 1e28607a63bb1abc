package model

import (
	"fmt"
	"strings"
)

// Kind é o tipo de um campo gravável de um recurso.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	default:
		return "string"
	}
}

// Record é uma linha devolvida pelo banco, coluna -> valor.
type Record map[string]any

// Field descreve um campo gravável: o nome é ao mesmo tempo a chave JSON e a coluna.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Min só vale para KindNumber e KindInteger.
	Min float64
}

// Resource define uma coleção exposta pela API e a tabela que a guarda.
type Resource struct {
	// Name é o segmento da URL (ex.: "encomendas").
	Name  string
	Table string
	// Fields na ordem em que aparecem nos INSERT/UPDATE.
	Fields []Field
	// TouchColumn, se não vazio, recebe CURRENT_TIMESTAMP em todo UPDATE.
	TouchColumn string
	// Note aparece na rota de documentação, junto das rotas do recurso.
	Note string

	InvalidBodyMessage string
	EmptyPatchMessage  string
}

// BodyShape descreve o corpo aceito, no formato usado pela rota de documentação.
// Com partial=true os campos são unidos por "||" (PATCH).
func (r Resource) BodyShape(partial bool) string {
	parts := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		name := f.Name
		if !f.Required {
			name += "?"
		}
		parts = append(parts, fmt.Sprintf("'%s': %s", name, f.Kind))
	}
	sep := ", "
	if partial {
		sep = " || "
	}
	return "{ " + strings.Join(parts, sep) + " }"
}
