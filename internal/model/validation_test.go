package model

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, msg, verr.Message)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-1", "abc", "1.5", "", "1e2", "99999999999999999999"} {
		t.Run("inválido "+raw, func(t *testing.T) {
			_, err := ParseID(raw)
			requireValidation(t, err, MsgInvalidID)
		})
	}
}

func TestParseFullEncomenda(t *testing.T) {
	t.Run("Corpo completo", func(t *testing.T) {
		values, err := Encomendas.ParseFull([]byte(`{"usuarios_id":1,"material":"aco","chumbo":2,"peso_laco":1.5,"cor":"azul"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(1), values["usuarios_id"])
		assert.Equal(t, "aco", values["material"])
		assert.Equal(t, 2.0, values["chumbo"])
		assert.Equal(t, 1.5, values["peso_laco"])
		assert.Equal(t, "azul", values["cor"])

		url, present := values["urlImagem"]
		assert.True(t, present)
		assert.Nil(t, url)
	})

	t.Run("Strings numéricas são aceitas", func(t *testing.T) {
		values, err := Encomendas.ParseFull([]byte(`{"usuarios_id":"3","material":"aco","chumbo":"0","peso_laco":" 2.25 ","cor":"azul","urlImagem":"http://x/y.png"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(3), values["usuarios_id"])
		assert.Equal(t, 0.0, values["chumbo"])
		assert.Equal(t, 2.25, values["peso_laco"])
		assert.Equal(t, "http://x/y.png", values["urlImagem"])
	})

	invalidos := map[string]string{
		"corpo vazio":          ``,
		"json quebrado":        `{"usuarios_id":`,
		"array":                `[1,2]`,
		"lixo após o objeto":   `{"usuarios_id":1,"material":"aco","chumbo":2,"peso_laco":1,"cor":"azul"} x`,
		"sem material":         `{"usuarios_id":1,"chumbo":2,"peso_laco":1,"cor":"azul"}`,
		"material vazio":       `{"usuarios_id":1,"material":"","chumbo":2,"peso_laco":1,"cor":"azul"}`,
		"material numérico":    `{"usuarios_id":1,"material":7,"chumbo":2,"peso_laco":1,"cor":"azul"}`,
		"chumbo nulo":          `{"usuarios_id":1,"material":"aco","chumbo":null,"peso_laco":1,"cor":"azul"}`,
		"chumbo negativo":      `{"usuarios_id":1,"material":"aco","chumbo":-0.1,"peso_laco":1,"cor":"azul"}`,
		"peso_laco texto":      `{"usuarios_id":1,"material":"aco","chumbo":2,"peso_laco":"leve","cor":"azul"}`,
		"usuarios_id zero":     `{"usuarios_id":0,"material":"aco","chumbo":2,"peso_laco":1,"cor":"azul"}`,
		"usuarios_id fracao":   `{"usuarios_id":1.5,"material":"aco","chumbo":2,"peso_laco":1,"cor":"azul"}`,
		"usuarios_id booleano": `{"usuarios_id":true,"material":"aco","chumbo":2,"peso_laco":1,"cor":"azul"}`,
		"urlImagem numérica":   `{"usuarios_id":1,"material":"aco","chumbo":2,"peso_laco":1,"cor":"azul","urlImagem":5}`,
	}
	for name, body := range invalidos {
		t.Run(name, func(t *testing.T) {
			_, err := Encomendas.ParseFull([]byte(body))
			requireValidation(t, err, "Dados obrigatórios inválidos")
		})
	}
}

func TestParseFullProduto(t *testing.T) {
	values, err := Produtos.ParseFull([]byte(`{"nome":"caneta","preco":0}`))
	require.NoError(t, err)
	assert.Equal(t, "caneta", values["nome"])
	assert.Equal(t, 0.0, values["preco"])

	_, err = Produtos.ParseFull([]byte(`{"nome":"caneta","preco":-1}`))
	requireValidation(t, err, "nome e preco (>= 0) obrigatórios")
}

func TestParsePartial(t *testing.T) {
	t.Run("Um campo", func(t *testing.T) {
		values, err := Encomendas.ParsePartial([]byte(`{"cor":"verde"}`))
		require.NoError(t, err)
		assert.Equal(t, Values{"cor": "verde"}, values)
	})

	t.Run("Campos desconhecidos e datas são ignorados", func(t *testing.T) {
		values, err := Encomendas.ParsePartial([]byte(`{"chumbo":3,"dataCriacao":"2024-01-01","extra":1}`))
		require.NoError(t, err)
		assert.Equal(t, Values{"chumbo": 3.0}, values)
	})

	t.Run("Nenhum campo reconhecido", func(t *testing.T) {
		for _, body := range []string{``, `{}`, `{"dataAtualizacao":"2024-01-01"}`, `{"cor":null}`} {
			_, err := Encomendas.ParsePartial([]byte(body))
			requireValidation(t, err, "envie ao menos um campo")
		}
	})

	t.Run("Mensagem por campo", func(t *testing.T) {
		cases := map[string]string{
			`{"chumbo":-1}`:       "chumbo deve ser número >= 0",
			`{"usuarios_id":0}`:   "usuarios_id deve ser inteiro >= 1",
			`{"material":""}`:     "material deve ser texto não vazio",
			`{"cor":12}`:          "cor deve ser texto não vazio",
			`{"urlImagem":false}`: "urlImagem deve ser texto",
		}
		for body, msg := range cases {
			_, err := Encomendas.ParsePartial([]byte(body))
			requireValidation(t, err, msg)
		}
	})

	t.Run("Variante produtos", func(t *testing.T) {
		_, err := Produtos.ParsePartial([]byte(`{}`))
		requireValidation(t, err, "envie nome e/ou preco")

		_, err = Produtos.ParsePartial([]byte(`{"preco":"abc"}`))
		requireValidation(t, err, "preco deve ser número >= 0")
	})
}

func TestLimitesNumericos(t *testing.T) {
	corpo := func(campo, valor string) []byte {
		return []byte(`{"usuarios_id":1,"material":"aco","chumbo":2,"peso_laco":1,"cor":"azul","` + campo + `":` + valor + `}`)
	}

	const (
		msgChumbo  = "chumbo deve ser número >= 0"
		msgPeso    = "peso_laco deve ser número >= 0"
		msgUsuario = "usuarios_id deve ser inteiro >= 1"
	)
	invalidos := []struct {
		campo, valor, msg string
	}{
		{"chumbo", `1e400`, msgChumbo},
		{"chumbo", `"1e400"`, msgChumbo},
		{"chumbo", `1e999999999`, msgChumbo},
		{"chumbo", `1e-999999999`, msgChumbo},
		{"peso_laco", `"1e999999999"`, msgPeso},
		{"chumbo", `"NaN"`, msgChumbo},
		{"chumbo", `"Infinity"`, msgChumbo},
		{"chumbo", `"-Infinity"`, msgChumbo},
		{"chumbo", `"` + strings.Repeat("9", 65) + `"`, msgChumbo},
		{"usuarios_id", `9223372036854775808`, msgUsuario},
		{"usuarios_id", `1e999999999`, msgUsuario},
	}
	for _, tc := range invalidos {
		t.Run(tc.campo+"="+tc.valor, func(t *testing.T) {
			_, err := Encomendas.ParseFull(corpo(tc.campo, tc.valor))
			requireValidation(t, err, "Dados obrigatórios inválidos")

			_, err = Encomendas.ParsePartial([]byte(`{"` + tc.campo + `":` + tc.valor + `}`))
			requireValidation(t, err, tc.msg)
		})
	}

	t.Run("Valores nos limites", func(t *testing.T) {
		values, err := Encomendas.ParseFull(corpo("usuarios_id", `9223372036854775807`))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), values["usuarios_id"])

		values, err = Encomendas.ParsePartial([]byte(`{"chumbo":1e2,"peso_laco":"2.5e-3"}`))
		require.NoError(t, err)
		assert.Equal(t, 100.0, values["chumbo"])
		assert.Equal(t, 0.0025, values["peso_laco"])
	})
}

func TestBodyShape(t *testing.T) {
	assert.Equal(t, "{ 'nome': string, 'preco': number }", Produtos.BodyShape(false))
	assert.Equal(t, "{ 'nome': string || 'preco': number }", Produtos.BodyShape(true))
	assert.Contains(t, Encomendas.BodyShape(false), "'urlImagem?': string")
	assert.Contains(t, Encomendas.BodyShape(false), "'usuarios_id': integer")
}
