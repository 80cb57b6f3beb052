package content_client

import (
	"encoding/json"
	"fmt"
)

// Op - вид узла в выражении фильтра контент-сервиса.
type Op string

const (
	OpEquals         Op = "eq"
	OpGreaterOrEqual Op = "gte"
	OpLessOrEqual    Op = "lte"
	OpAnd            Op = "and"
)

// Expr - выражение фильтра коллекции.
// Листья сравнивают поле со значением, узел And объединяет подвыражения.
// Значение неизменяемо: конструкторы копируют входные данные.
type Expr struct {
	op       Op
	field    string
	value    any
	operands []Expr
}

func Equals(field string, value any) Expr {
	return Expr{op: OpEquals, field: field, value: value}
}

func GreaterOrEqual(field string, value any) Expr {
	return Expr{op: OpGreaterOrEqual, field: field, value: value}
}

func LessOrEqual(field string, value any) Expr {
	return Expr{op: OpLessOrEqual, field: field, value: value}
}

// And объединяет выражения. Одиночное выражение возвращается как есть.
func And(exprs ...Expr) Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	operands := make([]Expr, len(exprs))
	copy(operands, exprs)
	return Expr{op: OpAnd, operands: operands}
}

func (e Expr) Op() Op           { return e.op }
func (e Expr) Field() string    { return e.field }
func (e Expr) Value() any       { return e.value }
func (e Expr) Operands() []Expr { return append([]Expr(nil), e.operands...) }

type exprJSON struct {
	Op    Op         `json:"op"`
	Field string     `json:"field,omitempty"`
	Value any        `json:"value,omitempty"`
	Exprs []exprJSON `json:"exprs,omitempty"`
}

func (e Expr) toJSON() (exprJSON, error) {
	switch e.op {
	case OpEquals, OpGreaterOrEqual, OpLessOrEqual:
		if e.field == "" {
			return exprJSON{}, fmt.Errorf("filter %q has empty field", e.op)
		}
		return exprJSON{Op: e.op, Field: e.field, Value: e.value}, nil
	case OpAnd:
		if len(e.operands) == 0 {
			return exprJSON{}, fmt.Errorf("filter %q has no operands", e.op)
		}
		out := exprJSON{Op: e.op, Exprs: make([]exprJSON, 0, len(e.operands))}
		for _, operand := range e.operands {
			child, err := operand.toJSON()
			if err != nil {
				return exprJSON{}, err
			}
			out.Exprs = append(out.Exprs, child)
		}
		return out, nil
	default:
		return exprJSON{}, fmt.Errorf("unknown filter operation %q", e.op)
	}
}

// MarshalJSON кодирует выражение в формат query-параметра filter.
func (e Expr) MarshalJSON() ([]byte, error) {
	out, err := e.toJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
