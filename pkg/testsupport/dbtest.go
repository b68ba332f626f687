package testsupport

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens a named in-memory sqlite database. Naming keeps
// concurrent tests from sharing state through the default shared cache.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	return sql.Open("sqlite3", dsn)
}
