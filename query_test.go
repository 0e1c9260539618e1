package quill

import (
	"testing"
)

func TestInsertMapScanError(t *testing.T) {
	type testModel struct {
		Id   int64  `db:"id" primary:"true"`
		Name string `db:"name"`
	}
	defer PurgeModels()

	result := QueryWith[testModel](ModelConfig{NoCache: true}).
		InsertMap(map[string]any{"id": "not-an-int"})
	if result.Error == nil {
		t.Fatal("Expected error for unscannable map value")
	}
	if result.Value != nil {
		t.Errorf("Expected nil value, got '%+v'", result.Value)
	}
}

func TestUpdateMapScanError(t *testing.T) {
	type testModel struct {
		Id   int64  `db:"id" primary:"true"`
		Name string `db:"name"`
	}
	defer PurgeModels()

	result := QueryWith[testModel](ModelConfig{NoCache: true}).
		UpdateMap(map[string]any{"id": "not-an-int"})
	if result.Error == nil {
		t.Fatal("Expected error for unscannable map value")
	}
	if result.Value != nil {
		t.Errorf("Expected nil value, got '%+v'", result.Value)
	}
}
