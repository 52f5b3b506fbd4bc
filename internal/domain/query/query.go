// Package query construye descripciones de consulta (filtros, orden y ventana de
// paginación) a partir de parámetros ya validados. No ejecuta nada: los adaptadores
// de persistencia compilan la descripción a SQL y los tests la evalúan en memoria.
package query

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clause es una condición del WHERE. Solo existen Equals y ContainsAny.
type Clause interface {
	clause()
}

// Equals filtra por coincidencia exacta de una columna.
type Equals struct {
	Field string
	Value string
}

// ContainsAny filtra por subcadena sin distinguir mayúsculas en cualquiera de los campos (OR).
// Term ya viene en minúsculas.
type ContainsAny struct {
	Fields []string
	Term   string
}

func (Equals) clause()      {}
func (ContainsAny) clause() {}

// Order criterio de ordenamiento.
type Order struct {
	Field string
	Desc  bool
}

// Page ventana de paginación: Number ≥ 1, Limit ≥ 1.
type Page struct {
	Number int
	Limit  int
}

// Skip devuelve el offset (Number-1)*Limit. Si no cabe en int satura en math.MaxInt.
func (p Page) Skip() int {
	if p.Number < 1 || p.Limit < 1 {
		return 0
	}
	if p.Number > MaxPage(p.Limit) {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// MaxPage mayor número de página cuyo offset cabe en int para el limit dado.
func MaxPage(limit int) int {
	if limit <= 1 {
		return math.MaxInt
	}
	return math.MaxInt/limit + 1
}

// Query descripción completa de una consulta de listado. Las cláusulas de Where se combinan con AND.
type Query struct {
	Where   []Clause
	OrderBy Order
	Page    Page
}

// Resource define qué parámetros filtran qué columnas y en qué columnas se busca texto.
type Resource struct {
	Name         string
	Filters      map[string]string // parámetro -> columna
	SearchFields []string
	OrderBy      Order
}

// Params parámetros validados de un listado.
type Params struct {
	Filters map[string]string // parámetro -> valor
	Search  string
	Page    Page
}

// NewestFirst es el orden por defecto de todos los listados.
var NewestFirst = Order{Field: "created_at", Desc: true}

// Recursos conocidos.
var (
	Activities = Resource{
		Name:         "activities",
		Filters:      map[string]string{"type": "type", "status": "type"},
		SearchFields: []string{"title", "description"},
		OrderBy:      NewestFirst,
	}
	Tasks = Resource{
		Name:         "tasks",
		Filters:      map[string]string{"status": "status", "priority": "priority"},
		SearchFields: []string{"title", "description"},
		OrderBy:      NewestFirst,
	}
	Orders = Resource{
		Name:         "orders",
		Filters:      map[string]string{"status": "status"},
		SearchFields: []string{"order_number", "customer_name", "description"},
		OrderBy:      NewestFirst,
	}
	Documents = Resource{
		Name:         "documents",
		Filters:      map[string]string{"type": "type"},
		SearchFields: []string{"title", "description"},
		OrderBy:      NewestFirst,
	}
)

// Build traduce los parámetros a una Query para el recurso. Parámetros que el
// recurso no conoce se ignoran; valores vacíos no generan cláusula.
func Build(r Resource, p Params) Query {
	q := Query{OrderBy: r.OrderBy, Page: p.Page}
	if q.OrderBy.Field == "" {
		q.OrderBy = NewestFirst
	}

	// orden estable de cláusulas: por nombre de parámetro
	names := make([]string, 0, len(p.Filters))
	for name := range p.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		column, ok := r.Filters[name]
		value := strings.TrimSpace(p.Filters[name])
		if !ok || value == "" {
			continue
		}
		q.Where = append(q.Where, Equals{Field: column, Value: value})
	}

	if term := strings.TrimSpace(p.Search); term != "" && len(r.SearchFields) > 0 {
		fields := make([]string, len(r.SearchFields))
		copy(fields, r.SearchFields)
		q.Where = append(q.Where, ContainsAny{Fields: fields, Term: Fold(term)})
	}
	return q
}

// WithoutPage devuelve la misma Query sin ventana (para el COUNT).
func (q Query) WithoutPage() Query {
	q.Page = Page{}
	return q
}

// Fold normaliza un texto para comparación sin mayúsculas.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Record es cualquier fila que expone sus columnas por nombre (para evaluar en memoria).
type Record interface {
	Field(name string) string
}

// Matches evalúa las cláusulas de q sobre r con la misma semántica que el SQL compilado.
func Matches(q Query, r Record) bool {
	for _, c := range q.Where {
		switch c := c.(type) {
		case Equals:
			if r.Field(c.Field) != c.Value {
				return false
			}
		case ContainsAny:
			found := false
			for _, f := range c.Fields {
				if strings.Contains(Fold(r.Field(f)), c.Term) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}
