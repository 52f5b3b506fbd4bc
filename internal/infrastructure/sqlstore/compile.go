package sqlstore

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Compiled fragmento SQL con sus argumentos posicionales.
type Compiled struct {
	SQL  string
	Args []any
}

// CompileWhere traduce las cláusulas de q a " WHERE ..." (vacío si no hay cláusulas).
// alias se antepone a cada columna (ej. "a"). Los placeholders empiezan en 1.
func CompileWhere(q query.Query, d Dialect, alias string) (Compiled, error) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return d.Placeholder(len(args))
	}

	for _, c := range q.Where {
		switch c := c.(type) {
		case query.Equals:
			col, err := column(alias, c.Field)
			if err != nil {
				return Compiled{}, err
			}
			conds = append(conds, col+" = "+next(c.Value))
		case query.ContainsAny:
			if len(c.Fields) == 0 {
				continue
			}
			pattern := "%" + likeEscaper.Replace(c.Term) + "%"
			ors := make([]string, 0, len(c.Fields))
			for _, f := range c.Fields {
				col, err := column(alias, f)
				if err != nil {
					return Compiled{}, err
				}
				ors = append(ors, d.fold(col)+" LIKE "+next(pattern)+` ESCAPE '\'`)
			}
			conds = append(conds, "("+strings.Join(ors, " OR ")+")")
		default:
			return Compiled{}, fmt.Errorf("cláusula no soportada: %T", c)
		}
	}

	if len(conds) == 0 {
		return Compiled{}, nil
	}
	return Compiled{SQL: " WHERE " + strings.Join(conds, " AND "), Args: args}, nil
}

// CompileList devuelve WHERE + ORDER BY + LIMIT/OFFSET para un listado paginado.
func CompileList(q query.Query, d Dialect, alias string) (Compiled, error) {
	where, err := CompileWhere(q, d, alias)
	if err != nil {
		return Compiled{}, err
	}
	var b strings.Builder
	b.WriteString(where.SQL)
	args := where.Args

	if q.OrderBy.Field != "" {
		col, err := column(alias, q.OrderBy.Field)
		if err != nil {
			return Compiled{}, err
		}
		dir := "ASC"
		if q.OrderBy.Desc {
			dir = "DESC"
		}
		// id como desempate para que la paginación sea estable
		idCol, _ := column(alias, "id")
		fmt.Fprintf(&b, " ORDER BY %s %s, %s %s", col, dir, idCol, dir)
	}

	if q.Page.Limit > 0 {
		args = append(args, q.Page.Limit)
		fmt.Fprintf(&b, " LIMIT %s", d.Placeholder(len(args)))
		args = append(args, q.Page.Skip())
		fmt.Fprintf(&b, " OFFSET %s", d.Placeholder(len(args)))
	}
	return Compiled{SQL: b.String(), Args: args}, nil
}

func column(alias, field string) (string, error) {
	if !identifier.MatchString(field) {
		return "", fmt.Errorf("columna inválida: %q", field)
	}
	if alias == "" {
		return field, nil
	}
	return alias + "." + field, nil
}
