package firebirddialect

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/quillorm/quill"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ColumnKind names a logical column category that maps onto a concrete
// Firebird column type. The mapping is a static table, so adding an engine
// version with different spellings only means swapping the table out.
type ColumnKind int

const (
	KindPrimaryKey ColumnKind = iota
	KindBigPrimaryKey
	KindString
	KindText
	KindSmallInt
	KindInteger
	KindBigInt
	KindFloat
	KindDecimal
	KindDatetime
	KindTimestamp
	KindTime
	KindDate
	KindBinary
	KindBoolean
	KindMoney
)

var columnTypes = map[ColumnKind]string{
	KindPrimaryKey:    "INTEGER GENERATED BY DEFAULT AS IDENTITY",
	KindBigPrimaryKey: "BIGINT GENERATED BY DEFAULT AS IDENTITY",
	KindString:        "VARCHAR(255)",
	KindText:          "BLOB SUB_TYPE TEXT",
	KindSmallInt:      "SMALLINT",
	KindInteger:       "INTEGER",
	KindBigInt:        "BIGINT",
	KindFloat:         "DOUBLE PRECISION",
	KindDecimal:       "NUMERIC(10,0)",
	KindDatetime:      "TIMESTAMP",
	KindTimestamp:     "TIMESTAMP",
	KindTime:          "TIME",
	KindDate:          "DATE",
	KindBinary:        "BLOB SUB_TYPE BINARY",
	KindBoolean:       "BOOLEAN",
	KindMoney:         "DECIMAL(19,4)",
}

var columnKindNames = map[string]ColumnKind{
	"primary_key":     KindPrimaryKey,
	"big_primary_key": KindBigPrimaryKey,
	"string":          KindString,
	"text":            KindText,
	"small_int":       KindSmallInt,
	"integer":         KindInteger,
	"big_int":         KindBigInt,
	"float":           KindFloat,
	"decimal":         KindDecimal,
	"datetime":        KindDatetime,
	"timestamp":       KindTimestamp,
	"time":            KindTime,
	"date":            KindDate,
	"binary":          KindBinary,
	"boolean":         KindBoolean,
	"money":           KindMoney,
}

// TypeFor returns the Firebird column type for a kind.
func TypeFor(kind ColumnKind) (string, bool) {
	columnType, ok := columnTypes[kind]
	return columnType, ok
}

// KindFromName resolves a kind by its tag name, e.g. `kind:"money"`.
func KindFromName(name string) (ColumnKind, bool) {
	kind, ok := columnKindNames[name]
	return kind, ok
}

func (dialect FirebirdDialect) ColumnType(field reflect.StructField) (string, error) {
	columnType := ""
	columnDefault := ""
	columnNull := " NOT NULL"
	columnPrimary := ""
	columnUnique := ""

	if value, ok := field.Tag.Lookup("sqldefault"); ok {
		columnDefault = fmt.Sprint(" DEFAULT ", value)
	}

	if value, ok := field.Tag.Lookup("unique"); ok && value == "true" {
		columnUnique = " UNIQUE"
	}

	fieldType := field.Type.String()
	fieldKind := field.Type.Kind().String()

	if value, ok := field.Tag.Lookup("sqltype"); ok {
		columnType = value
		if nullableType(field) {
			columnNull = " NULL"
		}

	} else if name, ok := field.Tag.Lookup("kind"); ok {
		kind, ok := KindFromName(name)
		if !ok {
			return "", fmt.Errorf("quill: invalid column kind '%s' for field '%s'", name, field.Name)
		}
		columnType = columnTypes[kind]
		if kind == KindPrimaryKey || kind == KindBigPrimaryKey {
			columnPrimary = " PRIMARY KEY"
		}
		if nullableType(field) {
			columnNull = " NULL"
		}

	} else if value, ok := field.Tag.Lookup("primary"); ok && value == "true" {
		columnPrimary = " PRIMARY KEY"
		switch fieldKind {
		case "int", "int64", "uint", "uint32", "uint64":
			columnType = columnTypes[KindBigPrimaryKey]
		case "int8", "int16", "int32", "uint8", "uint16":
			columnType = columnTypes[KindPrimaryKey]
		case "string":
			columnType = columnTypes[KindString]
			if size, ok := field.Tag.Lookup("size"); ok {
				columnType = fmt.Sprintf("VARCHAR(%s)", size)
			}
		default:
			return "", fmt.Errorf("quill: invalid type for primary key '%s'", fieldType)
		}

	} else if strings.HasPrefix(fieldType, "quill.ForeignKey[") || strings.HasPrefix(fieldType, "quill.NullForeignKey[") {
		return dialect.foreignColumnType(field)

	} else {
		switch fieldType {
		case "bool":
			columnType = columnTypes[KindBoolean]
		case "sql.NullBool":
			columnType = columnTypes[KindBoolean]
			columnNull = " NULL"
		case "float32", "float64":
			columnType = columnTypes[KindFloat]
		case "sql.NullFloat64":
			columnType = columnTypes[KindFloat]
			columnNull = " NULL"
		case "int8", "int16", "uint8":
			columnType = columnTypes[KindSmallInt]
		case "sql.NullInt16":
			columnType = columnTypes[KindSmallInt]
			columnNull = " NULL"
		case "int32", "uint16":
			columnType = columnTypes[KindInteger]
		case "sql.NullInt32":
			columnType = columnTypes[KindInteger]
			columnNull = " NULL"
		case "int", "int64", "uint", "uint32", "uint64":
			columnType = columnTypes[KindBigInt]
		case "sql.NullInt64":
			columnType = columnTypes[KindBigInt]
			columnNull = " NULL"
		case "[]byte", "[]uint8":
			columnType = columnTypes[KindBinary]
		case "string", "sql.NullString":
			if size, ok := field.Tag.Lookup("size"); ok {
				columnType = fmt.Sprintf("VARCHAR(%s)", size)
			} else {
				columnType = columnTypes[KindText]
			}
			if fieldType == "sql.NullString" {
				columnNull = " NULL"
			}
		case "time.Time":
			columnType = columnTypes[KindTimestamp]
		case "sql.NullTime":
			columnType = columnTypes[KindTimestamp]
			columnNull = " NULL"
		default:
			return "", fmt.Errorf("quill: invalid type '%s' for column", fieldType)
		}
	}

	return fmt.Sprint(columnType, columnPrimary, columnUnique, columnNull, columnDefault), nil
}

// foreignColumnType renders a foreign key column. The column type matches
// the first token of the related primary key's type, which strips identity
// generation off BIGINT GENERATED BY DEFAULT AS IDENTITY and friends.
func (dialect FirebirdDialect) foreignColumnType(field reflect.StructField) (string, error) {
	columnNull := " NOT NULL"
	if strings.HasPrefix(field.Type.String(), "quill.NullForeignKey[") {
		columnNull = " NULL"
	}

	related := reflect.New(field.Type).MethodByName("Model").Call(nil)
	relatedModel := related[0].Elem()
	relatedTable := relatedModel.FieldByName("Table").String()
	relatedColumn := relatedModel.FieldByName("PrimaryColumn").String()
	relatedFields := relatedModel.FieldByName("Fields").MapRange()
	for relatedFields.Next() {
		if relatedFields.Key().String() != relatedColumn {
			continue
		}
		relatedField := relatedFields.Value().Interface().(reflect.StructField)
		relatedType, err := dialect.ColumnType(relatedField)
		if err != nil {
			return "", err
		}
		columnType := strings.SplitN(relatedType, " ", 2)[0]
		if strings.HasPrefix(columnType, "VARCHAR") {
			columnType = strings.SplitN(relatedType, " PRIMARY KEY", 2)[0]
		}

		var sql strings.Builder
		sql.WriteString(columnType)
		sql.WriteString(columnNull)
		sql.WriteString(" REFERENCES ")
		sql.WriteString(dialect.QuoteIdentifier(relatedTable))
		sql.WriteString(" (")
		sql.WriteString(dialect.QuoteIdentifier(relatedColumn))
		sql.WriteString(")")
		if value, ok := field.Tag.Lookup("on_delete"); ok {
			sql.WriteString(" ON DELETE ")
			sql.WriteString(value)
		}
		if value, ok := field.Tag.Lookup("on_update"); ok {
			sql.WriteString(" ON UPDATE ")
			sql.WriteString(value)
		}
		return sql.String(), nil
	}

	return "", fmt.Errorf("quill: primary key not found for related table '%s'", relatedTable)
}

func nullableType(field reflect.StructField) bool {
	if field.Type.Kind() == reflect.Pointer {
		return true
	}
	switch field.Type.String() {
	case "sql.NullBool", "sql.NullByte", "sql.NullFloat64", "sql.NullInt16",
		"sql.NullInt32", "sql.NullInt64", "sql.NullString", "sql.NullTime":
		return true
	}
	return strings.HasPrefix(field.Type.String(), "quill.NullForeignKey[")
}

func sortedFieldNames(config quill.QueryConfig) []string {
	fieldNames := maps.Keys(config.Fields)
	slices.Sort(fieldNames)
	return fieldNames
}
