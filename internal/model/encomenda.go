// /internal/model/encomenda.go
package model

import "time"

// Encomenda representa uma encomenda na tabela "encomendas".
// A struct serve ao AutoMigrate; as rotas trabalham com Record.
type Encomenda struct {
	ID         uint    `gorm:"primaryKey"`
	UsuariosID int64   `gorm:"column:usuarios_id;not null"`
	Material   string  `gorm:"column:material;not null"`
	Chumbo     float64 `gorm:"column:chumbo;type:double precision;not null"`
	PesoLaco   float64 `gorm:"column:peso_laco;type:double precision;not null"`
	Cor        string  `gorm:"column:cor;not null"`
	URLImagem  *string `gorm:"column:urlImagem"` // opcional
	// Preenchidas pelo banco; o cliente não escreve nelas.
	DataCriacao     time.Time `gorm:"column:dataCriacao;not null;default:CURRENT_TIMESTAMP"`
	DataAtualizacao time.Time `gorm:"column:dataAtualizacao;not null;default:CURRENT_TIMESTAMP"`
}

func (Encomenda) TableName() string { return "encomendas" }

// Encomendas é a definição do recurso /api/encomendas.
var Encomendas = Resource{
	Name:  "encomendas",
	Table: Encomenda{}.TableName(),
	Fields: []Field{
		{Name: "usuarios_id", Kind: KindInteger, Required: true, Min: 1},
		{Name: "material", Kind: KindString, Required: true},
		{Name: "chumbo", Kind: KindNumber, Required: true, Min: 0},
		{Name: "peso_laco", Kind: KindNumber, Required: true, Min: 0},
		{Name: "cor", Kind: KindString, Required: true},
		{Name: "urlImagem", Kind: KindString},
	},
	TouchColumn:        "dataAtualizacao",
	InvalidBodyMessage: "Dados obrigatórios inválidos",
	EmptyPatchMessage:  "envie ao menos um campo",
}
