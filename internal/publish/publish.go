// Package publish is the optional write-only sink for dashboard runs.
package publish

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/schema"
)

// RunStoreManager holds the process-wide RunStore.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.PublishManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the RunStore, or nil when publishing was never initialized.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}

// Global Manager instance for main logic.
var (
	Manager   = &RunStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetPublishDBFilePath returns the path to the SQLite DB file for published runs.
func GetPublishDBFilePath() string {
	return contract.GetPublishDBFilePath()
}

// InitPublishing initializes the global manager. An empty backend leaves publishing disabled.
func InitPublishing(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		if backend == "" {
			return
		}
		store, err := NewRunStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize publish store: %w", err)
			return
		}
		Manager.Lock()
		Manager.runs = store
		Manager.Unlock()
	})

	return initErr
}

// ClosePublishing should be called on application shutdown.
func ClosePublishing() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}

// ClearPublished removes every published run for the backend.
// For SQLite, it deletes the database file.
// For MySQL and PostgreSQL, it drops the publish tables.
// For NoneBackend, it does nothing.
func ClearPublished(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return errors.New("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		return dropPublishTables(backend, connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported publish backend for clearing: %s", backend)
	}
}

// dropPublishTables connects to the SQL database and drops the publish tables,
// children first.
func dropPublishTables(backend schema.DatabaseBackend, connStr string) error {
	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}
	return dropTables(db, backend)
}

func dropTables(db *sql.DB, backend schema.DatabaseBackend) error {
	for i := len(publishTables) - 1; i >= 0; i-- {
		table := publishTables[i]
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(table, backend))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
