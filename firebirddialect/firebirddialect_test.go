package firebirddialect

import (
	"database/sql"
	"testing"
	"time"

	"github.com/quillorm/quill"
	"golang.org/x/exp/slices"
)

func TestAs(t *testing.T) {
	dialect := FirebirdDialect{}
	expected := map[string]quill.SqlAs{
		`"x" AS "alias1"`:          quill.As("x", "alias1"),
		`"x" AS "y" AS "alias2"`:   quill.As(quill.As("x", "y"), "alias2"),
		`count(*) AS "alias3"`:     quill.As(quill.Unsafe("count(*)"), "alias3"),
	}
	for expected, alias := range expected {
		sql := alias.StringForDialect(dialect)
		if expected != sql {
			t.Errorf("Expected '%+v', got '%+v'", expected, sql)
		}
	}
}

func TestColumn(t *testing.T) {
	dialect := FirebirdDialect{}
	expected := map[string]quill.SqlColumn{
		`"x"`:           quill.Column("x"),
		`"x"."y"`:       quill.Column("x.y"),
		`"x"."y"."z"`:   quill.Column("x.y.z"),
		`"x"""`:         quill.Column(`x"`),
	}
	for expected, column := range expected {
		sql := column.StringForDialect(dialect)
		if expected != sql {
			t.Errorf("Expected '%+v', got '%+v'", expected, sql)
		}
	}
}

func TestBuildDelete(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})

	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs := []any{}
	expectedSql := `DELETE FROM "testmodel"`
	queryString, args, err := dialect.BuildDelete(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// WHERE
	query.Filter("test_id", "=", 1)
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs = []any{1}
	expectedSql = `DELETE FROM "testmodel" WHERE "test_id" = ?`
	queryString, args, err = dialect.BuildDelete(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// ORDER BY
	query.Sort("-test_id")
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql = `DELETE FROM "testmodel" WHERE "test_id" = ? ORDER BY "test_id" DESC`
	queryString, args, err = dialect.BuildDelete(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// LIMIT renders as a trailing ROWS clause.
	query.Limit(3)
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql = `DELETE FROM "testmodel" WHERE "test_id" = ? ORDER BY "test_id" DESC ROWS 3`
	queryString, args, err = dialect.BuildDelete(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// OFFSET is rejected.
	query.Offset(5)
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	if _, _, err = dialect.BuildDelete(config); err == nil {
		t.Error("Expected error for DELETE with OFFSET")
	}
}

func TestBuildInsert(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})

	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs := []any{"testing 123"}
	expectedSql := `INSERT INTO "testmodel" ("test_value_1") VALUES (?)`
	queryString, args, err := dialect.BuildInsert(config, map[string]any{"test_value_1": "testing 123"}, "test_value_1")
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	if _, _, err = dialect.BuildInsert(config, map[string]any{"test_value_1": "x"}, "invalid_column"); err == nil {
		t.Error("Expected error for invalid column")
	}
}

func TestBuildSelect(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})

	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs := []any{}
	expectedSql := `SELECT * FROM "testmodel"`
	queryString, args, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// WHERE
	query.Filter("test_id", "=", 1)
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs = []any{1}
	expectedSql = `SELECT * FROM "testmodel" WHERE "test_id" = ?`
	queryString, args, err = dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// ORDER BY
	query.Sort("test_value_1", "-test_id")
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql = `SELECT * FROM "testmodel" WHERE "test_id" = ? ORDER BY "test_value_1" ASC, "test_id" DESC`
	queryString, args, err = dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// LIMIT becomes a FIRST directive after the SELECT keyword.
	query.Limit(3)
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql = `SELECT FIRST 3 * FROM "testmodel" WHERE "test_id" = ? ORDER BY "test_value_1" ASC, "test_id" DESC`
	queryString, args, err = dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}

	// OFFSET becomes a SKIP directive, after FIRST.
	query.Offset(5)
	config = query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql = `SELECT FIRST 3 SKIP 5 * FROM "testmodel" WHERE "test_id" = ? ORDER BY "test_value_1" ASC, "test_id" DESC`
	queryString, args, err = dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}
}

func TestBuildSelectOffsetWithoutLimit(t *testing.T) {
	type testModel struct {
		Id int64 `db:"test_id" primary:"true"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true}).Offset(10)
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `SELECT SKIP 10 * FROM "testmodel"`
	queryString, _, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
}

func TestBuildSelectCount(t *testing.T) {
	type testModel struct {
		Id int64 `db:"test_id" primary:"true"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})
	config := query.Config
	config.Count = true
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `SELECT count(*) FROM "testmodel"`
	queryString, _, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
}

func TestBuildSelectColumns(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true}).
		Select("test_id", quill.As(quill.Unsafe("count(*)"), "total"))
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `SELECT "test_id",count(*) AS "total" FROM "testmodel"`
	queryString, _, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
}

func TestBuildSelectIn(t *testing.T) {
	type testModel struct {
		Id int64 `db:"test_id" primary:"true"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true}).
		Filter("test_id", "IN", []any{10, 20, 30})
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs := []any{10, 20, 30}
	expectedSql := `SELECT * FROM "testmodel" WHERE "test_id" IN (?,?,?)`
	queryString, args, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}
}

func TestBuildSelectJoin(t *testing.T) {
	type testModel struct {
		Id int64 `db:"test_id" primary:"true"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true}).
		JoinLeft("other", quill.Q(quill.Column("other.id"), "=", quill.Column("testmodel.other_id")))
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `SELECT * FROM "testmodel" LEFT JOIN "other" ON "other"."id" = "testmodel"."other_id"`
	queryString, _, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
}

func TestBuildSelectFilterGroups(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true}).
		FilterOr(
			quill.Q("test_id", "=", 1),
			quill.Q("test_value_1", "=", "x"),
		)
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs := []any{1, "x"}
	expectedSql := `SELECT * FROM "testmodel" WHERE ( "test_id" = ? OR "test_value_1" = ? )`
	queryString, args, err := dialect.BuildSelect(config)
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}
}

func TestBuildUpdate(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true}).
		Filter("test_id", "=", 1)
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedArgs := []any{"testing 123", 1}
	expectedSql := `UPDATE "testmodel" SET "test_value_1" = ? WHERE "test_id" = ?`
	queryString, args, err := dialect.BuildUpdate(config, map[string]any{"test_value_1": "testing 123"}, "test_value_1")
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
	if !slices.Equal(args, expectedArgs) {
		t.Errorf("Expected '%s', got '%s'", expectedArgs, args)
	}
}

func TestBuildTableColumnAdd(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `ALTER TABLE "testmodel" ADD "test_value_1" VARCHAR(100) NOT NULL`
	queryString, err := dialect.BuildTableColumnAdd(config, "test_value_1")
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
}

func TestBuildTableColumnDrop(t *testing.T) {
	type testModel struct {
		Id int64 `db:"test_id" primary:"true"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `ALTER TABLE "testmodel" DROP "test_value_1"`
	queryString, err := dialect.BuildTableColumnDrop(config, "test_value_1")
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}
}

func TestBuildTableCreate(t *testing.T) {
	type testModel struct {
		Id     int64  `db:"test_id" primary:"true"`
		Value1 string `db:"test_value_1" size:"100"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := "CREATE TABLE \"testmodel\" (\n\t\"test_id\" BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY NOT NULL,\n\t\"test_value_1\" VARCHAR(100) NOT NULL\n)"
	queryString, err := dialect.BuildTableCreate(config, quill.TableCreateConfig{})
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}

	// Firebird has no CREATE TABLE IF NOT EXISTS.
	if _, err = dialect.BuildTableCreate(config, quill.TableCreateConfig{IfNotExists: true}); err == nil {
		t.Error("Expected error for IF NOT EXISTS")
	}
}

func TestBuildTableDrop(t *testing.T) {
	type testModel struct {
		Id int64 `db:"test_id" primary:"true"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	query := quill.QueryWith[testModel](quill.ModelConfig{NoCache: true})
	config := query.Config
	config.Fields = query.Model.Fields
	config.Table = "testmodel"
	expectedSql := `DROP TABLE "testmodel"`
	queryString, err := dialect.BuildTableDrop(config, quill.TableDropConfig{})
	if err != nil {
		t.Errorf("Unexpected error %s", err.Error())
	}
	if queryString != expectedSql {
		t.Errorf("Expected '%s', got '%s'", expectedSql, queryString)
	}

	// Firebird has no DROP TABLE IF EXISTS.
	if _, err = dialect.BuildTableDrop(config, quill.TableDropConfig{IfExists: true}); err == nil {
		t.Error("Expected error for IF EXISTS")
	}
}

func TestColumnType(t *testing.T) {
	type related struct {
		Id int64 `db:"id" primary:"true"`
	}
	type testModel struct {
		Id       int64                      `db:"id" primary:"true"`
		Active   bool                       `db:"active"`
		Balance  float64                    `db:"balance" sqldefault:"0"`
		Bio      string                     `db:"bio"`
		Code     string                     `db:"code" size:"10" unique:"true"`
		Count32  int32                      `db:"count32"`
		Count8   int8                       `db:"count8"`
		Created  time.Time                  `db:"created"`
		Data     []byte                     `db:"data"`
		Deleted  sql.NullTime               `db:"deleted"`
		Legacy   string                     `db:"legacy" sqltype:"CHAR(2)"`
		Name     sql.NullString             `db:"name" size:"100"`
		Price    float64                    `db:"price" kind:"money"`
		Related  quill.ForeignKey[related]  `db:"related_id" on_delete:"CASCADE"`
		Related2 quill.NullForeignKey[related] `db:"related2_id"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	fields := quill.UseWith[testModel](quill.ModelConfig{NoCache: true}).Fields
	expected := map[string]string{
		"id":          "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY NOT NULL",
		"active":      "BOOLEAN NOT NULL",
		"balance":     "DOUBLE PRECISION NOT NULL DEFAULT 0",
		"bio":         "BLOB SUB_TYPE TEXT NOT NULL",
		"code":        "VARCHAR(10) UNIQUE NOT NULL",
		"count32":     "INTEGER NOT NULL",
		"count8":      "SMALLINT NOT NULL",
		"created":     "TIMESTAMP NOT NULL",
		"data":        "BLOB SUB_TYPE BINARY NOT NULL",
		"deleted":     "TIMESTAMP NULL",
		"legacy":      "CHAR(2) NOT NULL",
		"name":        "VARCHAR(100) NULL",
		"price":       "DECIMAL(19,4) NOT NULL",
		"related_id":  `BIGINT NOT NULL REFERENCES "related" ("id") ON DELETE CASCADE`,
		"related2_id": `BIGINT NULL REFERENCES "related" ("id")`,
	}
	for column, expectedType := range expected {
		field, ok := fields[column]
		if !ok {
			t.Errorf("Missing field for column '%s'", column)
			continue
		}
		columnType, err := dialect.ColumnType(field)
		if err != nil {
			t.Errorf("Unexpected error %s for column '%s'", err.Error(), column)
			continue
		}
		if columnType != expectedType {
			t.Errorf("Expected '%s', got '%s'", expectedType, columnType)
		}
	}
}

func TestColumnTypeInvalidKind(t *testing.T) {
	type testModel struct {
		Id    int64   `db:"id" primary:"true"`
		Wrong float64 `db:"wrong" kind:"nope"`
	}
	defer quill.PurgeModels()

	dialect := FirebirdDialect{}
	fields := quill.UseWith[testModel](quill.ModelConfig{NoCache: true}).Fields
	if _, err := dialect.ColumnType(fields["wrong"]); err == nil {
		t.Error("Expected error for invalid column kind")
	}
}

func TestParam(t *testing.T) {
	dialect := FirebirdDialect{}
	for i := 1; i <= 3; i++ {
		if param := dialect.Param(i); param != "?" {
			t.Errorf("Expected '?', got '%s'", param)
		}
	}
}

func TestTypeFor(t *testing.T) {
	if columnType, ok := TypeFor(KindMoney); !ok || columnType != "DECIMAL(19,4)" {
		t.Errorf("Expected 'DECIMAL(19,4)', got '%s'", columnType)
	}
	if _, ok := TypeFor(ColumnKind(99)); ok {
		t.Error("Expected no type for unknown kind")
	}
}
