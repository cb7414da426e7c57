package db

import (
	"fmt"
	"strings"
)

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	if err := db.runScreenMigration(); err != nil {
		return err
	}

	return nil
}

// runScreenMigration adds the screen column to databases created before it
// existed.
func (db *DB) runScreenMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('interactions')
		WHERE name = 'screen'
	`).Scan(&count)

	if err != nil {
		return fmt.Errorf("checking for screen column: %w", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`ALTER TABLE interactions ADD COLUMN screen TEXT`)
	if err != nil && !strings.Contains(err.Error(), "duplicate column name") {
		return fmt.Errorf("adding screen column: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing screen migration: %w", err)
	}

	return nil
}
