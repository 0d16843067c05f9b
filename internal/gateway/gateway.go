package gateway

import "context"

// ======================================================
// CONTRATO DO GATEWAY DE DADOS
// ======================================================
//
// Cada entidade é uma coleção de linhas com operações de
// select/insert/update/delete. Filtros são sempre de campo único
// (igualdade ou comparação simples) e a ordenação também.

type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

type Sort struct {
	Field string
	Desc  bool
}

type Query struct {
	Filters []Filter
	Sort    Sort
}

// ByID monta o filtro de igualdade usado em update/delete e buscas pontuais.
func ByID(id string) Query {
	return Query{Filters: []Filter{{Field: "id", Op: OpEq, Value: id}}}
}

func Between(field string, from, to any) []Filter {
	return []Filter{
		{Field: field, Op: OpGte, Value: from},
		{Field: field, Op: OpLte, Value: to},
	}
}

func Asc(field string) Sort  { return Sort{Field: field} }
func Desc(field string) Sort { return Sort{Field: field, Desc: true} }

// Collection é uma coleção remota de linhas do tipo T.
// Identificadores são atribuídos pelo gateway na inserção; quem chama
// nunca gera ids.
type Collection[T any] interface {
	Select(ctx context.Context, q Query) ([]T, error)
	Insert(ctx context.Context, row *T) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}
