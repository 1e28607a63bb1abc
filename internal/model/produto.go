package model

// Produto é a variante antiga do recurso, mantida atrás de ENABLE_PRODUTOS.
type Produto struct {
	ID    uint    `gorm:"primaryKey"`
	Nome  string  `gorm:"column:nome;not null"`
	Preco float64 `gorm:"column:preco;type:double precision;not null"`
}

func (Produto) TableName() string { return "produtos" }

var Produtos = Resource{
	Name:  "produtos",
	Table: Produto{}.TableName(),
	Fields: []Field{
		{Name: "nome", Kind: KindString, Required: true},
		{Name: "preco", Kind: KindNumber, Required: true, Min: 0},
	},
	Note:               "rotas antes servidas em /produtos, agora sob /api/produtos",
	InvalidBodyMessage: "nome e preco (>= 0) obrigatórios",
	EmptyPatchMessage:  "envie nome e/ou preco",
}
