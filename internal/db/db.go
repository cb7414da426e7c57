package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the history database connection
type DB struct {
	conn *sql.DB
}

// Open opens the history database, creating it on first use
func Open(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		if err := Initialize(dbPath); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}

	// Run any pending migrations
	if err := db.RunMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// LogInteraction records a call or announcement and returns its ID
func (db *DB) LogInteraction(i Interaction) (int64, error) {
	query := `
		INSERT INTO interactions (contact_id, contact_name, phone, kind, screen, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	result, err := db.conn.Exec(query,
		i.ContactID,
		i.ContactName,
		i.Phone,
		i.Kind,
		i.Screen,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting interaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting insert ID: %w", err)
	}

	return id, nil
}

// RecentInteractions returns the newest interactions first. An empty
// contactID returns interactions for every contact.
func (db *DB) RecentInteractions(contactID string, limit int) ([]Interaction, error) {
	query := `
		SELECT id, contact_id, contact_name, phone, kind, screen, created_at
		FROM interactions
		WHERE (? = '' OR contact_id = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := db.conn.Query(query, contactID, contactID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		var i Interaction
		err := rows.Scan(
			&i.ID, &i.ContactID, &i.ContactName, &i.Phone,
			&i.Kind, &i.Screen, &i.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		out = append(out, i)
	}

	return out, rows.Err()
}

// CallCounts returns the number of calls placed per contact ID
func (db *DB) CallCounts() (map[string]int, error) {
	rows, err := db.conn.Query(`
		SELECT contact_id, COUNT(*)
		FROM interactions
		WHERE kind = 'call'
		GROUP BY contact_id
	`)
	if err != nil {
		return nil, fmt.Errorf("counting calls: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scanning call count: %w", err)
		}
		counts[id] = n
	}

	return counts, rows.Err()
}
