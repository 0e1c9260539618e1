package quill

import (
	"fmt"
	"reflect"
)

var FilterOperators = map[string]string{
	"eq":     "=",
	"in":     "IN",
	"is":     "IS",
	"is_not": "IS NOT",
	"lt":     "<",
	"lte":    "<=",
	"not":    "!=",
	"not_in": "NOT IN",
	"gt":     ">",
	"gte":    ">=",
}

// SqlColumn quotes as an identifier, splitting on dots.
type SqlColumn string

func Column(name string) SqlColumn {
	return SqlColumn(name)
}

func (column SqlColumn) StringForDialect(dialect Dialect) string {
	return dialect.QuoteIdentifier(string(column))
}

// SqlAs aliases a column or expression.
type SqlAs struct {
	Alias  string
	Column any
}

func As(column any, alias string) SqlAs {
	return SqlAs{Alias: alias, Column: column}
}

func (expr SqlAs) StringForDialect(dialect Dialect) string {
	var column string
	switch cv := expr.Column.(type) {
	case string:
		column = dialect.QuoteIdentifier(cv)

	case DialectStringer:
		column = cv.StringForDialect(dialect)

	case fmt.Stringer:
		column = cv.String()

	default:
		column = fmt.Sprint(cv)
	}
	return column + " AS " + dialect.QuoteIdentifier(expr.Alias)
}

// SqlUnsafe is spliced into statements verbatim. Caller-trusted.
type SqlUnsafe struct {
	Sql string
}

func Unsafe(sql string) SqlUnsafe {
	return SqlUnsafe{Sql: sql}
}

func (unsafe SqlUnsafe) StringForDialect(Dialect) string {
	return unsafe.Sql
}

func (unsafe SqlUnsafe) String() string {
	return unsafe.Sql
}

// SqlParam binds a value and renders as the dialect's placeholder.
type SqlParam struct {
	Value any
}

func Param(value any) SqlParam {
	return SqlParam{Value: value}
}

func (param SqlParam) StringWithArgs(dialect Dialect, args []any) (string, []any, error) {
	args = append(args, param.Value)
	return dialect.Param(len(args)), args, nil
}

// SqlWithArgs is a parenthesized sequence of raw SQL fragments and embedded
// parameters, e.g. quill.Sql(quill.Param(1), ",", quill.Param(2)) renders as
// a placeholder list for IN clauses.
type SqlWithArgs struct {
	Parts []any
}

func Sql(parts ...any) SqlWithArgs {
	return SqlWithArgs{Parts: parts}
}

func (expr SqlWithArgs) StringWithArgs(dialect Dialect, args []any) (string, []any, error) {
	sql := "("
	for _, part := range expr.Parts {
		switch pv := part.(type) {
		case string:
			sql += pv

		case DialectStringerWithArgs:
			partSql, partArgs, err := pv.StringWithArgs(dialect, args)
			if err != nil {
				return "", nil, err
			}
			args = partArgs
			sql += partSql

		case DialectStringer:
			sql += pv.StringForDialect(dialect)

		default:
			args = append(args, part)
			sql += dialect.Param(len(args))
		}
	}
	return sql + ")", args, nil
}

// FilterClause is either a column-operator-value triple or, when Rule is
// set, a structural token such as "(", ")", "AND", "OR", or "NOT".
type FilterClause struct {
	Column   any
	Operator string
	Rule     string
	Value    any
}

func Q(column any, operator string, value any) FilterClause {
	return FilterClause{Column: column, Operator: operator, Value: value}
}

func (clause FilterClause) StringWithArgs(dialect Dialect, args []any) (string, []any, error) {
	if clause.Rule != "" {
		return " " + clause.Rule, args, nil
	}

	var column string
	switch cv := clause.Column.(type) {
	case string:
		column = dialect.QuoteIdentifier(cv)

	case DialectStringer:
		column = cv.StringForDialect(dialect)

	case fmt.Stringer:
		column = cv.String()

	default:
		return "", nil, fmt.Errorf("quill: invalid column type %#v in filter", clause.Column)
	}

	operator := clause.Operator
	if alias, ok := FilterOperators[operator]; ok {
		operator = alias
	}

	value, args, err := filterValueWithArgs(dialect, args, clause.Value)
	if err != nil {
		return "", nil, err
	}

	return " " + column + " " + operator + " " + value, args, nil
}

func filterValueWithArgs(dialect Dialect, args []any, value any) (string, []any, error) {
	switch vv := value.(type) {
	case nil:
		return "NULL", args, nil

	case DialectStringerWithArgs:
		return vv.StringWithArgs(dialect, args)

	case DialectStringer:
		return vv.StringForDialect(dialect), args, nil
	}

	// Slices expand into a placeholder list for IN and NOT IN.
	reflected := reflect.ValueOf(value)
	if reflected.Kind() == reflect.Slice {
		sql := "("
		for i := 0; i < reflected.Len(); i++ {
			if i > 0 {
				sql += ","
			}
			args = append(args, reflected.Index(i).Interface())
			sql += dialect.Param(len(args))
		}
		return sql + ")", args, nil
	}

	args = append(args, value)
	return dialect.Param(len(args)), args, nil
}

func And(clauses ...any) []FilterClause {
	return groupFilterClauses("AND", clauses)
}

func Or(clauses ...any) []FilterClause {
	return groupFilterClauses("OR", clauses)
}

func Not(clauses ...any) []FilterClause {
	flat := []FilterClause{{Rule: "NOT"}}
	for _, clause := range clauses {
		flat = flattenFilterClause(flat, clause)
	}
	return flat
}

func groupFilterClauses(rule string, clauses []any) []FilterClause {
	flat := []FilterClause{{Rule: "("}}
	for i, clause := range clauses {
		if i > 0 {
			flat = append(flat, FilterClause{Rule: rule})
		}
		flat = flattenFilterClause(flat, clause)
	}
	return append(flat, FilterClause{Rule: ")"})
}

func flattenFilterClause(flat []FilterClause, clause any) []FilterClause {
	switch cv := clause.(type) {
	case FilterClause:
		flat = append(flat, cv)

	case []FilterClause:
		flat = append(flat, cv...)
	}
	return flat
}
