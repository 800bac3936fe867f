package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Store provides access to the video catalog. It is constructed once at the
// application root and injected into collaborators; there is no hidden
// singleton connection.
type Store struct {
	db *sql.DB
}

// NewStore creates a catalog store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	return err
}

const videoColumns = "id, language, length, image_path, full_path, full_sub_path, title, director, year, overview, genres, poster_remote_path, added_at"

// Insert adds a new record to the catalog.
// Sets ID and AddedAt on the struct. Returns ErrDuplicate if a record with
// the same full_path already exists.
func (s *Store) Insert(r *VideoRecord) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO videos (language, length, image_path, full_path, full_sub_path, title, director, year, overview, genres, poster_remote_path, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Language, r.Length, r.ImagePath, r.FullPath, r.FullSubPath, r.Title, r.Director, r.Year, r.Overview,
		strings.Join(r.Genres, genreSeparator), r.PosterRemotePath, now,
	)
	if err != nil {
		return fmt.Errorf("insert video: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	r.ID = id
	r.AddedAt = now
	return nil
}

func scanVideo(row interface{ Scan(...any) error }) (*VideoRecord, error) {
	r := &VideoRecord{}
	var genres string
	err := row.Scan(&r.ID, &r.Language, &r.Length, &r.ImagePath, &r.FullPath, &r.FullSubPath,
		&r.Title, &r.Director, &r.Year, &r.Overview, &genres, &r.PosterRemotePath, &r.AddedAt)
	if err != nil {
		return nil, err
	}
	if genres != "" {
		r.Genres = strings.Split(genres, genreSeparator)
	}
	return r, nil
}

// All returns every record in the catalog, ordered by title.
func (s *Store) All() ([]*VideoRecord, error) {
	rows, err := s.db.Query("SELECT " + videoColumns + " FROM videos ORDER BY title, full_path")
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*VideoRecord
	for rows.Next() {
		r, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return results, nil
}

// GetByPath retrieves a record by its absolute media path.
// Returns ErrNotFound if no record exists for the path.
func (s *Store) GetByPath(path string) (*VideoRecord, error) {
	r, err := scanVideo(s.db.QueryRow("SELECT "+videoColumns+" FROM videos WHERE full_path = ?", path))
	if err != nil {
		return nil, fmt.Errorf("get video %s: %w", path, mapSQLiteError(err))
	}
	return r, nil
}

// Paths returns the set of all persisted media paths, used for diffing
// against the on-disk file set.
func (s *Store) Paths() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT full_path FROM videos")
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	defer func() { _ = rows.Close() }()

	paths := make(map[string]bool)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		paths[p] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate paths: %w", err)
	}
	return paths, nil
}

// DeleteByPath removes a record by its absolute media path.
// This operation is idempotent - no error is returned if the record does not exist.
func (s *Store) DeleteByPath(path string) error {
	_, err := s.db.Exec("DELETE FROM videos WHERE full_path = ?", path)
	if err != nil {
		return fmt.Errorf("delete video %s: %w", path, mapSQLiteError(err))
	}
	return nil
}
