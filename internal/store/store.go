// Package store keeps catalog fixtures in SQLite, as an alternative to the
// embedded or file-based fixture sources.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/abelbrown/catalog/internal/fixture"
	"github.com/abelbrown/catalog/internal/model"
	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Counts is the number of rows per table.
type Counts struct {
	Users      int
	Categories int
	Products   int
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the fixture tables if they don't exist.
// There are no foreign keys: dangling references are valid fixture data.
// position keeps the original sequence order.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		sex TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		owner_id INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		category_id INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_position ON users(position);
	CREATE INDEX IF NOT EXISTS idx_categories_position ON categories(position);
	CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Seed replaces the stored fixtures with set in a single transaction.
// Thread-safe: acquires write lock.
func (s *Store) Seed(set fixture.Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"users", "categories", "products"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	userStmt, err := tx.Prepare(`INSERT INTO users (id, position, name, sex) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer userStmt.Close()
	for i, u := range set.Users {
		if _, err := userStmt.Exec(u.ID, i, u.Name, string(u.Sex)); err != nil {
			return fmt.Errorf("insert user %d: %w", u.ID, err)
		}
	}

	catStmt, err := tx.Prepare(`INSERT INTO categories (id, position, title, icon, owner_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer catStmt.Close()
	for i, c := range set.Categories {
		if _, err := catStmt.Exec(c.ID, i, c.Title, c.Icon, c.OwnerID); err != nil {
			return fmt.Errorf("insert category %d: %w", c.ID, err)
		}
	}

	prodStmt, err := tx.Prepare(`INSERT INTO products (id, position, name, category_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer prodStmt.Close()
	for i, p := range set.Products {
		if _, err := prodStmt.Exec(p.ID, i, p.Name, p.CategoryID); err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads the three sequences back in their original order.
// Thread-safe: acquires read lock.
func (s *Store) Load() (fixture.Set, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var set fixture.Set
	var err error

	if set.Users, err = s.queryUsers(); err != nil {
		return fixture.Set{}, fmt.Errorf("load users: %w", err)
	}
	if set.Categories, err = s.queryCategories(); err != nil {
		return fixture.Set{}, fmt.Errorf("load categories: %w", err)
	}
	if set.Products, err = s.queryProducts(); err != nil {
		return fixture.Set{}, fmt.Errorf("load products: %w", err)
	}

	return set, nil
}

// Counts returns row counts per table.
// Thread-safe: acquires read lock.
func (s *Store) Counts() (Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Counts
	err := s.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM products)
	`).Scan(&c.Users, &c.Categories, &c.Products)
	return c, err
}

// Caller must hold s.mu (read lock is sufficient).
func (s *Store) queryUsers() ([]model.User, error) {
	rows, err := s.db.Query(`SELECT id, name, sex FROM users ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var sex string
		if err := rows.Scan(&u.ID, &u.Name, &sex); err != nil {
			return nil, err
		}
		if u.Sex, err = model.ParseSex(sex); err != nil {
			return nil, fmt.Errorf("user %d: %w", u.ID, err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Caller must hold s.mu (read lock is sufficient).
func (s *Store) queryCategories() ([]model.Category, error) {
	rows, err := s.db.Query(`SELECT id, title, icon, owner_id FROM categories ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Icon, &c.OwnerID); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Caller must hold s.mu (read lock is sufficient).
func (s *Store) queryProducts() ([]model.Product, error) {
	rows, err := s.db.Query(`SELECT id, name, category_id FROM products ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
