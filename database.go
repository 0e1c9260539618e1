package quill

import (
	"database/sql"
)

var db_ *sql.DB

func Database() *sql.DB {
	return db_
}

func UseDatabase(dbConnection *sql.DB) {
	db_ = dbConnection
}
