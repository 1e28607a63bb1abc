package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const MsgInvalidID = "id inválido"

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// ValidationError é uma falha de entrada detectada antes de qualquer acesso ao banco.
// Message vai direto para o corpo {"erro": ...}.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Values são os campos já convertidos: string, float64 ou int64.
// Um valor nil significa "não enviado".
type Values map[string]any

// ParseID valida o id da rota: inteiro em base 10 e maior que zero.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Message: MsgInvalidID}
	}
	return id, nil
}

// ParseFull valida um corpo de POST/PUT: todos os campos obrigatórios presentes e válidos.
// Campos opcionais ausentes ficam nil.
func (r Resource) ParseFull(raw []byte) (Values, error) {
	body, err := decodeObject(raw)
	if err != nil {
		return nil, &ValidationError{Message: r.InvalidBodyMessage}
	}

	values := make(Values, len(r.Fields))
	for _, f := range r.Fields {
		v, present := body[f.Name]
		if !present || v == nil {
			if f.Required {
				return nil, &ValidationError{Message: r.InvalidBodyMessage}
			}
			values[f.Name] = nil
			continue
		}
		parsed, ok := f.parse(v)
		if !ok {
			return nil, &ValidationError{Message: r.InvalidBodyMessage}
		}
		values[f.Name] = parsed
	}
	return values, nil
}

// ParsePartial valida um corpo de PATCH. Só os campos enviados (e não nulos)
// entram no resultado, cada um validado pelas mesmas regras do POST.
func (r Resource) ParsePartial(raw []byte) (Values, error) {
	body, err := decodeObject(raw)
	if err != nil {
		return nil, &ValidationError{Message: r.InvalidBodyMessage}
	}

	values := make(Values)
	for _, f := range r.Fields {
		if v, present := body[f.Name]; present && v != nil {
			values[f.Name] = v
		}
	}
	if len(values) == 0 {
		return nil, &ValidationError{Message: r.EmptyPatchMessage}
	}

	for _, f := range r.Fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		parsed, ok := f.parse(v)
		if !ok {
			return nil, &ValidationError{Message: f.invalidMessage()}
		}
		values[f.Name] = parsed
	}
	return values, nil
}

func (f Field) parse(v any) (any, bool) {
	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok || (f.Required && s == "") {
			return nil, false
		}
		return s, true
	case KindNumber:
		d, ok := toDecimal(v)
		if !ok || d.LessThan(decimal.NewFromFloat(f.Min)) {
			return nil, false
		}
		n, _ := d.Float64()
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, false
		}
		return n, true
	case KindInteger:
		d, ok := toDecimal(v)
		if !ok || !d.IsInteger() || d.GreaterThan(maxInt64) || d.LessThan(decimal.NewFromFloat(f.Min)) {
			return nil, false
		}
		return d.IntPart(), true
	}
	return nil, false
}

func (f Field) invalidMessage() string {
	bound := strconv.FormatFloat(f.Min, 'f', -1, 64)
	switch f.Kind {
	case KindNumber:
		return f.Name + " deve ser número >= " + bound
	case KindInteger:
		return f.Name + " deve ser inteiro >= " + bound
	}
	if f.Required {
		return f.Name + " deve ser texto não vazio"
	}
	return f.Name + " deve ser texto"
}

// Limites de um valor numérico antes de qualquer comparação: comparar decimais
// com expoentes distantes exige calcular 10^exp.
const (
	maxNumberLen   = 64
	maxNumberScale = 30
)

// toDecimal aceita números JSON e strings numéricas ("1.5").
func toDecimal(v any) (decimal.Decimal, bool) {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = strings.TrimSpace(n)
	default:
		return decimal.Decimal{}, false
	}
	if s == "" || len(s) > maxNumberLen {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp > maxNumberScale || exp < -maxNumberScale {
		return decimal.Decimal{}, false
	}
	return d, true
}

// decodeObject trata corpo vazio ou "null" como {} e recusa qualquer coisa que não seja objeto.
func decodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("dados após o objeto JSON")
	}
	if body == nil {
		return map[string]any{}, nil
	}
	return body, nil
}
