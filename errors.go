package quill

// ErrorNotFound is returned when a query expecting at least one row finds
// none.
type ErrorNotFound struct{}

func (err ErrorNotFound) Error() string {
	return "Not found"
}

// ErrorSchema is returned when a table or column cannot be resolved against
// the registered model metadata. Dialects surface it unmodified.
type ErrorSchema struct {
	Column string
	Table  string
}

func (err ErrorSchema) Error() string {
	if err.Column != "" {
		return "quill: cannot resolve column '" + err.Column + "' on table '" + err.Table + "'"
	}
	return "quill: cannot resolve table '" + err.Table + "'"
}

type UseDatabaseError struct{}

func (err UseDatabaseError) Error() string {
	return "quill: missing database connection. Register with `quill.UseDatabase(db *sql.DB)`"
}
