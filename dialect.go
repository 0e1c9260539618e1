package quill

import (
	"reflect"
)

// Dialect translates dialect-neutral query state into engine-specific SQL.
// Implementations live in their own packages, e.g. firebirddialect.
type Dialect interface {
	BuildDelete(QueryConfig) (string, []any, error)
	BuildInsert(QueryConfig, map[string]any, ...string) (string, []any, error)
	BuildSelect(QueryConfig) (string, []any, error)
	BuildTableColumnAdd(QueryConfig, string) (string, error)
	BuildTableColumnDrop(QueryConfig, string) (string, error)
	BuildTableCreate(QueryConfig, TableCreateConfig) (string, error)
	BuildTableDrop(QueryConfig, TableDropConfig) (string, error)
	BuildUpdate(QueryConfig, map[string]any, ...string) (string, []any, error)
	ColumnType(reflect.StructField) (string, error)
	Param(i int) string
	QuoteIdentifier(string) string
}

// DialectStringer renders an expression value as SQL text for a dialect.
type DialectStringer interface {
	StringForDialect(Dialect) string
}

// DialectStringerWithArgs renders an expression value that carries its own
// parameter bindings. The returned args slice replaces the one passed in.
type DialectStringerWithArgs interface {
	StringWithArgs(Dialect, []any) (string, []any, error)
}

var defaultDialect Dialect

func SetDialect(dialect Dialect) {
	defaultDialect = dialect
}
