package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

const defaultTestDSN = "root:@tcp(localhost:3306)/stockcheck_test?parseTime=true"

// SetupTestDB opens the integration database named by STOCKCHECK_TEST_DSN
// (default: local 'stockcheck_test') and skips the test when it is unreachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("STOCKCHECK_TEST_DSN")
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

// CleanupTestDB empties every table touched by the tests and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "MinimumStock", "Suppliers", "Product"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema read by the stock repository.
func SetupTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []struct {
		name  string
		query string
	}{
		{"Product", `
		CREATE TABLE IF NOT EXISTS Product (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50),
			name VARCHAR(255),
			stock INT,
			isDeleted TINYINT(1) NOT NULL DEFAULT 0
		)`},
		{"Suppliers", `
		CREATE TABLE IF NOT EXISTS Suppliers (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)`},
		{"MinimumStock", `
		CREATE TABLE IF NOT EXISTS MinimumStock (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			productId INT NOT NULL UNIQUE,
			minimumStock INT NOT NULL DEFAULT 0,
			reorderQuantity INT NOT NULL DEFAULT 0,
			preferredSupplierId INT NULL,
			INDEX idx_supplier (preferredSupplierId)
		)`},
		{"Orders", `
		CREATE TABLE IF NOT EXISTS Orders (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			status VARCHAR(50) NOT NULL DEFAULT 'New'
		)`},
		{"OrderItems", `
		CREATE TABLE IF NOT EXISTS OrderItems (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			productId INT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			INDEX idx_product (productId)
		)`},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
