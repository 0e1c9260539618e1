// Package firebirddialect generates Firebird and Interbase flavored SQL for
// quill. Firebird expresses pagination as FIRST/SKIP directives placed right
// after the SELECT keyword (or trailing ROWS clauses), and fetches generated
// primary keys through a RETURNING clause instead of LastInsertId.
package firebirddialect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quillorm/quill"
)

type FirebirdDialect struct{}

func (dialect FirebirdDialect) BuildDelete(config quill.QueryConfig) (string, []any, error) {
	args := append([]any(nil), config.Params...)
	var queryString strings.Builder
	queryString.WriteString("DELETE FROM ")

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", nil, err
	}
	queryString.WriteString(from)

	// WHERE
	where, args, err := dialect.buildWhere(config, args)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		queryString.WriteString(where)
	}

	// ORDER BY
	if len(config.Sort) > 0 {
		queryString.WriteString(dialect.buildSort(config))
	}

	// OFFSET
	if config.Offset != nil {
		return "", nil, fmt.Errorf("quill: firebird DELETE does not support OFFSET")
	}

	// LIMIT becomes a trailing ROWS clause.
	if config.Limit != nil {
		limit, ok, err := paginationValue(config.Limit)
		if err != nil {
			return "", nil, err
		}
		if ok {
			return ApplyLimitOffset(queryString.String(), int(limit), -1), args, nil
		}
	}

	return queryString.String(), args, nil
}

func (dialect FirebirdDialect) BuildInsert(config quill.QueryConfig, rowMap map[string]any, columns ...string) (string, []any, error) {
	args := make([]any, 0)
	var queryString strings.Builder

	queryString.WriteString("INSERT INTO ")

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", nil, err
	}
	queryString.WriteString(from)

	queryString.WriteString(" (")
	count := 0
	for _, column := range columns {
		if arg, ok := rowMap[column]; ok {
			if _, ok := config.Fields[column]; !ok {
				return "", nil, fmt.Errorf("quill: field for column '%s' not found on model for table '%s'", column, config.Table)
			}
			args = append(args, arg)
			if count > 0 {
				queryString.WriteString(",")
			}
			count++
			queryString.WriteString(dialect.QuoteIdentifier(column))
		} else {
			return "", nil, fmt.Errorf("quill: invalid column '%s' on INSERT", column)
		}
	}

	queryString.WriteString(") VALUES (")
	for i := 1; i <= count; i++ {
		if i > 1 {
			queryString.WriteString(",")
		}
		queryString.WriteString(dialect.Param(i))
	}
	queryString.WriteString(")")

	return queryString.String(), args, nil
}

func (dialect FirebirdDialect) buildJoins(config quill.QueryConfig, args []any) (string, []any, error) {
	var queryPart strings.Builder
	if len(config.Joins) > 0 {
		for _, join := range config.Joins {
			if len(join.On) > 0 {
				queryPart.WriteString(fmt.Sprintf(" %s JOIN %s ON", join.Direction, dialect.QuoteIdentifier(join.Table)))
				for _, where := range join.On {
					queryWhere, whereArgs, err := where.StringWithArgs(dialect, args)
					if err != nil {
						return "", nil, err
					}
					args = whereArgs
					queryPart.WriteString(queryWhere)
				}
			}
		}
	}
	return queryPart.String(), args, nil
}

// BuildSelect renders pagination structurally: FIRST and SKIP are written
// immediately after the SELECT keyword during this single pass, so no
// post-hoc rewriting of the generated text is ever needed.
func (dialect FirebirdDialect) BuildSelect(config quill.QueryConfig) (string, []any, error) {
	args := append([]any(nil), config.Params...)
	var queryString strings.Builder
	queryString.WriteString("SELECT ")

	limit, hasLimit, err := paginationValue(config.Limit)
	if err != nil {
		return "", nil, err
	}
	offset, hasOffset, err := paginationValue(config.Offset)
	if err != nil {
		return "", nil, err
	}
	if hasLimit {
		queryString.WriteString("FIRST ")
		queryString.WriteString(strconv.FormatInt(limit, 10))
		queryString.WriteString(" ")
	}
	if hasOffset {
		queryString.WriteString("SKIP ")
		queryString.WriteString(strconv.FormatInt(offset, 10))
		queryString.WriteString(" ")
	}

	if config.Count {
		queryString.WriteString("count(*) FROM ")
	} else if len(config.Selected) > 0 {
		for i, column := range config.Selected {
			if i > 0 {
				queryString.WriteString(",")
			}
			switch cv := column.(type) {
			case string:
				queryString.WriteString(dialect.QuoteIdentifier(cv))

			case quill.DialectStringer:
				queryString.WriteString(cv.StringForDialect(dialect))

			case fmt.Stringer:
				queryString.WriteString(cv.String())

			default:
				return "", nil, fmt.Errorf("quill: invalid column type %#v", column)
			}
		}
		queryString.WriteString(" FROM ")
	} else {
		queryString.WriteString("* FROM ")
	}

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", nil, err
	}
	queryString.WriteString(from)

	// JOIN
	joins, args, err := dialect.buildJoins(config, args)
	if err != nil {
		return "", nil, err
	}
	if joins != "" {
		queryString.WriteString(joins)
	}

	// WHERE
	where, args, err := dialect.buildWhere(config, args)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		queryString.WriteString(where)
	}

	// ORDER BY
	if len(config.Sort) > 0 {
		queryString.WriteString(dialect.buildSort(config))
	}

	return queryString.String(), args, nil
}

func (dialect FirebirdDialect) buildSort(config quill.QueryConfig) string {
	var queryPart strings.Builder
	queryPart.WriteString(" ORDER BY ")
	for i, column := range config.Sort {
		if i > 0 {
			queryPart.WriteString(", ")
		}
		if strings.HasPrefix(column, "-") {
			queryPart.WriteString(dialect.QuoteIdentifier(column[1:]))
			queryPart.WriteString(" DESC")
		} else {
			queryPart.WriteString(dialect.QuoteIdentifier(column))
			queryPart.WriteString(" ASC")
		}
	}
	return queryPart.String()
}

func (dialect FirebirdDialect) buildTable(config quill.QueryConfig) (string, error) {
	switch tv := config.Table.(type) {
	case string:
		return dialect.QuoteIdentifier(tv), nil

	case quill.DialectStringer:
		return tv.StringForDialect(dialect), nil

	case fmt.Stringer:
		return tv.String(), nil

	default:
		return "", quill.ErrorSchema{Table: fmt.Sprintf("%v", config.Table)}
	}
}

func (dialect FirebirdDialect) BuildTableColumnAdd(config quill.QueryConfig, column string) (string, error) {
	field, ok := config.Fields[column]
	if !ok {
		return "", fmt.Errorf("quill: invalid column '%s' on model for table '%s'", column, config.Table)
	}

	columnType, err := dialect.ColumnType(field)
	if err != nil {
		return "", err
	}

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", err
	}

	// Firebird takes no COLUMN keyword on ALTER TABLE ADD.
	return fmt.Sprintf("ALTER TABLE %s ADD %s %s", from, dialect.QuoteIdentifier(column), columnType), nil
}

func (dialect FirebirdDialect) BuildTableColumnDrop(config quill.QueryConfig, column string) (string, error) {
	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("ALTER TABLE %s DROP %s", from, dialect.QuoteIdentifier(column)), nil
}

func (dialect FirebirdDialect) BuildTableCreate(config quill.QueryConfig, tableCreateConfig quill.TableCreateConfig) (string, error) {
	if tableCreateConfig.IfNotExists {
		return "", fmt.Errorf("quill: firebird does not support CREATE TABLE IF NOT EXISTS")
	}

	var sql strings.Builder
	sql.WriteString("CREATE TABLE ")

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", err
	}
	sql.WriteString(from)

	sql.WriteString(" (")
	fieldNames := sortedFieldNames(config)
	for i, fieldName := range fieldNames {
		field := config.Fields[fieldName]
		columnType, err := dialect.ColumnType(field)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sql.WriteString(",")
		}
		sql.WriteString("\n\t")
		sql.WriteString(dialect.QuoteIdentifier(fieldName))
		sql.WriteString(" ")
		sql.WriteString(columnType)
	}
	sql.WriteString("\n)")
	return sql.String(), nil
}

func (dialect FirebirdDialect) BuildTableDrop(config quill.QueryConfig, tableDropConfig quill.TableDropConfig) (string, error) {
	if tableDropConfig.IfExists {
		return "", fmt.Errorf("quill: firebird does not support DROP TABLE IF EXISTS")
	}

	var queryString strings.Builder
	queryString.WriteString("DROP TABLE ")

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", err
	}
	queryString.WriteString(from)

	return queryString.String(), nil
}

func (dialect FirebirdDialect) BuildUpdate(config quill.QueryConfig, rowMap map[string]any, columns ...string) (string, []any, error) {
	args := append([]any(nil), config.Params...)
	var queryString strings.Builder

	queryString.WriteString("UPDATE ")

	// TABLE
	from, err := dialect.buildTable(config)
	if err != nil {
		return "", nil, err
	}
	queryString.WriteString(from)

	queryString.WriteString(" SET ")

	first := true
	for _, column := range columns {
		if arg, ok := rowMap[column]; ok {
			args = append(args, arg)
			if first {
				first = false
			} else {
				queryString.WriteString(",")
			}
			queryString.WriteString(dialect.QuoteIdentifier(column))
			queryString.WriteString(" = ")
			queryString.WriteString(dialect.Param(len(args)))
		} else {
			return "", nil, fmt.Errorf("quill: invalid column '%s' on UPDATE", column)
		}
	}

	// WHERE
	where, args, err := dialect.buildWhere(config, args)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		queryString.WriteString(where)
	}

	return queryString.String(), args, nil
}

func (dialect FirebirdDialect) buildWhere(config quill.QueryConfig, args []any) (string, []any, error) {
	var queryPart strings.Builder
	if len(config.Filters) > 0 {
		queryPart.WriteString(" WHERE")
		for _, where := range config.Filters {
			queryWhere, whereArgs, err := where.StringWithArgs(dialect, args)
			if err != nil {
				return "", nil, err
			}
			args = whereArgs
			queryPart.WriteString(queryWhere)
		}
	}
	return queryPart.String(), args, nil
}

func (dialect FirebirdDialect) Param(identifier int) string {
	return "?"
}

func (dialect FirebirdDialect) QuoteIdentifier(identifier string) string {
	var query strings.Builder
	for i, part := range strings.Split(identifier, ".") {
		if i > 0 {
			query.WriteString(".")
		}
		query.WriteString(`"`)
		query.WriteString(strings.ReplaceAll(part, `"`, `""`))
		query.WriteString(`"`)
	}
	return query.String()
}

func paginationValue(value any) (int64, bool, error) {
	switch n := value.(type) {
	case nil:
		return 0, false, nil
	case int:
		return int64(n), true, nil
	case int8:
		return int64(n), true, nil
	case int16:
		return int64(n), true, nil
	case int32:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case uint:
		return int64(n), true, nil
	case uint8:
		return int64(n), true, nil
	case uint16:
		return int64(n), true, nil
	case uint32:
		return int64(n), true, nil
	case uint64:
		return int64(n), true, nil
	default:
		return 0, false, fmt.Errorf("quill: invalid pagination value %#v", value)
	}
}
