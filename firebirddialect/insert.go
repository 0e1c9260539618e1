package firebirddialect

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/quillorm/quill"
	"golang.org/x/exp/slices"
)

// Execer is satisfied by *sql.DB, *sql.Tx, and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InsertStatement is a finished INSERT with its bound named arguments. When
// GeneratedKey is set the statement ends in a RETURNING clause and Exec
// fetches the key through it, since Firebird drivers cannot service
// sql.Result.LastInsertId.
type InsertStatement struct {
	Args         []any
	GeneratedKey bool
	KeyColumn    string
	Sql          string

	generatedId any
	fetched     bool
}

func (statement *InsertStatement) Exec(db Execer) error {
	return statement.ExecContext(context.Background(), db)
}

func (statement *InsertStatement) ExecContext(ctx context.Context, db Execer) error {
	if !statement.GeneratedKey {
		_, err := db.ExecContext(ctx, statement.Sql, statement.Args...)
		return err
	}
	var id any
	err := db.QueryRowContext(ctx, statement.Sql, statement.Args...).Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	statement.generatedId = id
	statement.fetched = true
	return nil
}

// Inserter builds INSERT statements one at a time and remembers the most
// recent one so its generated key can be read back after execution. Use one
// Inserter per unit of work; sharing an instance across goroutines races
// LastInsertId against the next BuildInsert.
type Inserter struct {
	Dialect FirebirdDialect

	last *InsertStatement
}

// BuildInsert assembles an INSERT for the given row. Columns missing from
// the model and nil values bound to non-nullable columns are skipped rather
// than rejected, matching the column's own nullability policy. Raw SQL
// values are spliced in verbatim with their arguments merged. When every
// column is skipped the primary key columns are written with literal NULLs
// so the engine applies its identity defaults.
func (inserter *Inserter) BuildInsert(config quill.QueryConfig, rowMap map[string]any, columns ...string) (*InsertStatement, error) {
	dialect := inserter.Dialect
	table, err := dialect.buildTable(config)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(columns))
	quoted := make([]string, 0, len(columns))
	values := make([]string, 0, len(columns))
	param := 0
	for _, column := range columns {
		field, ok := config.Fields[column]
		if !ok {
			continue
		}
		value, ok := rowMap[column]
		if !ok {
			continue
		}
		if value == nil && !nullableType(field) {
			continue
		}
		switch expression := value.(type) {
		case quill.DialectStringerWithArgs:
			text, expressionArgs, err := expression.StringWithArgs(dialect, args)
			if err != nil {
				return nil, err
			}
			args = expressionArgs
			values = append(values, strings.TrimLeft(text, " "))

		case quill.DialectStringer:
			values = append(values, expression.StringForDialect(dialect))

		default:
			name := "p" + strconv.Itoa(param)
			param++
			args = append(args, sql.Named(name, value))
			values = append(values, ":"+name)
		}
		quoted = append(quoted, dialect.QuoteIdentifier(column))
	}

	if len(quoted) == 0 {
		for _, column := range primaryKeyColumns(config) {
			quoted = append(quoted, dialect.QuoteIdentifier(column))
			values = append(values, "NULL")
		}
		if len(quoted) == 0 {
			return nil, fmt.Errorf("quill: no insertable columns for table '%s'", config.Table)
		}
	}

	statement := &InsertStatement{
		Args: args,
		Sql: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table,
			strings.Join(quoted, ","), strings.Join(values, ",")),
	}

	if column, ok := generatedKeyColumn(config); ok {
		statement.Sql += " RETURNING " + dialect.QuoteIdentifier(column)
		statement.GeneratedKey = true
		statement.KeyColumn = column
	}

	inserter.last = statement
	return statement, nil
}

// LastInsertId reads the generated key fetched by the most recently built
// statement's execution. The second return is false when no statement with
// a generated key has been built, or its execution returned no row.
func (inserter *Inserter) LastInsertId() (any, bool) {
	if inserter.last == nil || !inserter.last.fetched {
		return nil, false
	}
	return inserter.last.generatedId, true
}

func primaryKeyColumns(config quill.QueryConfig) []string {
	columns := make([]string, 0, 1)
	for column, field := range config.Fields {
		if value, ok := field.Tag.Lookup("primary"); ok && value == "true" {
			columns = append(columns, column)
		}
	}
	slices.Sort(columns)
	return columns
}

// generatedKeyColumn reports the column eligible for RETURNING: a single
// non-string primary key. Composite and string keys are caller-supplied,
// never engine-generated.
func generatedKeyColumn(config quill.QueryConfig) (string, bool) {
	columns := primaryKeyColumns(config)
	if len(columns) != 1 {
		return "", false
	}
	field := config.Fields[columns[0]]
	if field.Type.Kind() == reflect.String || field.Type.String() == "sql.NullString" {
		return "", false
	}
	return columns[0], true
}
