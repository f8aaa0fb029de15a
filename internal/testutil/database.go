package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

const defaultTestDSN = "root:@tcp(localhost:3306)/bakery_test?parseTime=true"

// SetupTestDB opens the integration test database, skipping the test when
// it is unreachable. BAKERY_TEST_DSN overrides the default DSN.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("BAKERY_TEST_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	for _, table := range []string{"Product"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createProductTable := `
	CREATE TABLE IF NOT EXISTS Product (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		slug VARCHAR(120) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(100),
		imageUrl VARCHAR(500),
		isActive TINYINT(1) DEFAULT 1,
		isDeleted TINYINT(1) DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_active (isActive, isDeleted)
	)`

	if _, err := db.Exec(createProductTable); err != nil {
		t.Logf("failed to create table Product: %v", err)
	}
	// Leftovers from an aborted run would collide with seeded ids.
	if _, err := db.Exec("DELETE FROM Product"); err != nil {
		t.Logf("failed to clean table Product: %v", err)
	}
}
