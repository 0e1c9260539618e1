package quill

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"maps"
	"reflect"
	"strings"
	"sync"
	"time"
)

// Model is the cached reflection metadata for a table-mapped struct. Column
// names come from `db` struct tags, the primary key from `primary:"true"`.
type Model[T any] struct {
	Config         ModelConfig
	Fields         map[string]reflect.StructField
	PrimaryColumn  string
	PrimaryColumns []string
	PrimaryField   string
	Table          string
	Type           reflect.Type
}

func (model *Model[T]) Clone() *Model[T] {
	return &Model[T]{
		Fields:         maps.Clone(model.Fields),
		PrimaryColumn:  model.PrimaryColumn,
		PrimaryColumns: append([]string(nil), model.PrimaryColumns...),
		PrimaryField:   model.PrimaryField,
		Table:          model.Table,
		Type:           model.Type,
	}
}

func (model *Model[T]) ScanMap(data map[string]any) (*T, error) {
	var row T
	value := reflect.ValueOf(&row).Elem()

	for column, v := range data {
		if field, ok := model.Fields[column]; ok {
			if field := value.FieldByName(field.Name); field.IsValid() {
				columnValue := reflect.ValueOf(v)

				if v == nil {
					// database/sql null types (NullString, etc) default to `Valid: false`.
					// quill.ForeignKey and quill.NullForeignKey also follow this convention.

				} else if columnValue.CanConvert(field.Type()) {
					field.Set(columnValue)

				} else if field.Kind() == reflect.Struct {
					if scanner, ok := reflect.New(field.Type()).Interface().(sql.Scanner); ok {
						scanner.Scan(v)
						field.Set(reflect.ValueOf(scanner).Elem())

					} else if strings.HasPrefix(field.Type().String(), "quill.ForeignKey[") || strings.HasPrefix(field.Type().String(), "quill.NullForeignKey[") {
						subModelQ := field.Addr().MethodByName("Model").Call(nil)
						subPrimaryField := reflect.Indirect(subModelQ[0]).FieldByName("PrimaryField").Interface().(string)
						subField := field.FieldByName("Row").Elem().FieldByName(subPrimaryField)
						if subField.IsValid() {
							subField.Set(columnValue)
							field.FieldByName("Valid").SetBool(true)
						}
					} else {
						return nil, fmt.Errorf("quill: unhandled struct conversion in scan from '%s' to '%s'", columnValue.Type(), field.Type())
					}

				} else {
					return nil, fmt.Errorf("quill: unhandled type conversion in scan from '%s' to '%s'", columnValue.Type(), field.Type())
				}
			}
		}
	}

	// OneToMany relationships.
	for _, field := range model.Fields {
		if strings.HasPrefix(field.Type.String(), "quill.OneToMany[") {
			oneToMany := value.FieldByName(field.Name)
			oneToMany.FieldByName("RelatedColumn").SetString(field.Tag.Get("db"))
			oneToMany.FieldByName("RowPk").Set(value.FieldByName(model.PrimaryField))
		}
	}

	return &row, nil
}

func (model *Model[T]) ToJsonMap(row *T) map[string]any {
	result := make(map[string]any, 0)
	value := reflect.ValueOf(row).Elem()
	for _, field := range model.Fields {
		fieldName := strings.ToLower(field.Name)
		switch fv := value.FieldByName(field.Name).Interface().(type) {
		case JsonValuer:
			result[fieldName] = fv.JsonValue()

		case driver.Valuer:
			result[fieldName], _ = fv.Value()

		default:
			result[fieldName] = fv
		}
	}

	return result
}

func (model *Model[T]) ToMap(row *T) (map[string]any, error) {
	args := make(map[string]any)
	value := reflect.ValueOf(*row)

	for column := range model.Fields {
		fieldName := model.Fields[column].Name
		field := value.FieldByName(fieldName)

		// Skip zero valued primary keys.
		if field.IsZero() && model.Fields[column].Tag.Get("primary") == "true" {
			continue
		}

		switch field.Kind() {
		case reflect.Struct:
			switch vv := field.Interface().(type) {
			case driver.Valuer:
				v, _ := vv.Value()
				args[column] = v

			case time.Time:
				args[column] = vv

			default:
				if strings.HasPrefix(field.Type().String(), "quill.ForeignKey[") || strings.HasPrefix(field.Type().String(), "quill.NullForeignKey[") {
					if !field.FieldByName("Valid").Interface().(bool) {
						args[column] = nil
					} else {
						q := reflect.New(field.Type()).MethodByName("Model").Call(nil)
						fkPrimaryField := reflect.Indirect(q[0]).FieldByName("PrimaryField").Interface().(string)
						args[column] = reflect.Indirect(field.FieldByName("Row")).FieldByName(fkPrimaryField).Interface()
					}
				} else if strings.HasPrefix(field.Type().String(), "quill.OneToMany[") {
					continue
				} else {
					return nil, fmt.Errorf("quill: unsupported field type '%s' for column '%s' on table '%s'", field.Type().String(), column, model.Table)
				}
			}

		default:
			args[column] = field.Interface()
		}
	}

	return args, nil
}

func (model *Model[T]) ToValuesMap(row *T) map[string]any {
	result := make(map[string]any, 0)
	value := reflect.ValueOf(row).Elem()
	for column, field := range model.Fields {
		result[column] = value.FieldByName(field.Name).Interface()
	}
	return result
}

func (model *Model[T]) Zero() T {
	var zero T
	return zero
}

type ModelConfig struct {
	NoCache bool
	Table   string
}

type ModelConfigurable interface {
	ModelConfig() ModelConfig
}

var modelsCache = &sync.Map{}

func PurgeModels() {
	modelsCache.Range(func(key, value any) bool {
		modelsCache.Delete(key)
		return true
	})
}

func Transform[From any, To any](from *From) (*To, error) {
	data, err := Use[From]().ToMap(from)
	if err != nil {
		return nil, err
	}
	return UseWith[To](ModelConfig{}).ScanMap(data)
}

func TransformWith[From any, To any](from *From, toConfig ModelConfig) (*To, error) {
	data, err := Use[From]().ToMap(from)
	if err != nil {
		return nil, err
	}
	return UseWith[To](toConfig).ScanMap(data)
}

func Use[T any]() *Model[T] {
	var model T
	if configurable, ok := any(model).(ModelConfigurable); ok {
		return UseWith[T](configurable.ModelConfig())
	}
	return UseWith[T](ModelConfig{})
}

func UseWith[T any](config ModelConfig) *Model[T] {
	var zero T
	modelType := reflect.TypeOf(zero)
	modelTypeStr := fmt.Sprintf("%s%+v", modelType.String(), config)

	if !config.NoCache {
		if existing, ok := modelsCache.Load(modelTypeStr); ok {
			if model, ok := existing.(*Model[T]); ok {
				return model
			}
		}
	}

	var primaryColumns []string
	var primaryField string
	fields := make(map[string]reflect.StructField, 0)

	for _, field := range reflect.VisibleFields(modelType) {
		if column, ok := field.Tag.Lookup("db"); ok {
			if strings.HasPrefix(field.Type.String(), "quill.OneToMany[") {
				fields[field.Name] = field
			} else {
				fields[column] = field
				if field.Tag.Get("primary") == "true" {
					primaryColumns = append(primaryColumns, column)
					if primaryField == "" {
						primaryField = field.Name
					}
				}
			}
		}
	}

	model := &Model[T]{
		Config:         config,
		Fields:         fields,
		PrimaryColumns: primaryColumns,
		PrimaryField:   primaryField,
		Type:           modelType,
	}
	if len(primaryColumns) > 0 {
		model.PrimaryColumn = primaryColumns[0]
	}
	if config.Table == "" {
		model.Table = strings.ToLower(modelType.Name())
	} else {
		model.Table = config.Table
	}
	if !config.NoCache {
		modelsCache.Store(modelTypeStr, model)
	}
	return model
}
