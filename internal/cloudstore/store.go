package cloudstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

// ErrNotFound is returned when the named cloud does not exist.
var ErrNotFound = errors.New("cloud not found")

// Store is a sqlite-backed collection of named point clouds.
type Store struct {
	db *sql.DB
}

// CloudInfo describes one stored cloud.
type CloudInfo struct {
	ID               string
	Name             string
	CreatedUnixNanos int64
	PointCount       int
}

// Open opens (creating if needed) the database at path and applies any
// pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a cloud under the given name. Names are unique; saving an
// existing name fails. Returns the generated cloud ID.
func (s *Store) Save(name string, c cloud.Cloud) (string, error) {
	if name == "" {
		return "", errors.New("cloud name must not be empty")
	}

	id := uuid.NewString()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO clouds (cloud_id, name, created_unix_nanos, point_count) VALUES (?, ?, ?, ?)`,
		id, name, time.Now().UnixNano(), len(c),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert cloud %q: %w", name, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO cloud_points (cloud_id, point_index, x, y, z) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range c {
		if _, err := stmt.Exec(id, i, p[0], p[1], p[2]); err != nil {
			return "", fmt.Errorf("failed to insert point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit cloud %q: %w", name, err)
	}
	return id, nil
}

// Load returns the cloud stored under name, in original point order.
func (s *Store) Load(name string) (cloud.Cloud, error) {
	var id string
	var count int
	err := s.db.QueryRow(
		`SELECT cloud_id, point_count FROM clouds WHERE name = ?`, name,
	).Scan(&id, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up cloud %q: %w", name, err)
	}

	rows, err := s.db.Query(
		`SELECT x, y, z FROM cloud_points WHERE cloud_id = ? ORDER BY point_index`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query points for %q: %w", name, err)
	}
	defer rows.Close()

	c := make(cloud.Cloud, 0, count)
	for rows.Next() {
		var p cloud.Point
		if err := rows.Scan(&p[0], &p[1], &p[2]); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		c = append(c, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points for %q: %w", name, err)
	}
	return c, nil
}

// List returns metadata for all stored clouds, newest first.
func (s *Store) List() ([]CloudInfo, error) {
	rows, err := s.db.Query(
		`SELECT cloud_id, name, created_unix_nanos, point_count FROM clouds ORDER BY created_unix_nanos DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clouds: %w", err)
	}
	defer rows.Close()

	var infos []CloudInfo
	for rows.Next() {
		var info CloudInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedUnixNanos, &info.PointCount); err != nil {
			return nil, fmt.Errorf("failed to scan cloud info: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clouds: %w", err)
	}
	return infos, nil
}

// Delete removes the named cloud and its points. Points are deleted
// explicitly rather than via the FK cascade, which sqlite only honours with
// foreign_keys enabled.
func (s *Store) Delete(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`DELETE FROM cloud_points WHERE cloud_id = (SELECT cloud_id FROM clouds WHERE name = ?)`, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete points for %q: %w", name, err)
	}

	res, err := tx.Exec(`DELETE FROM clouds WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete cloud %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete of %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return tx.Commit()
}
