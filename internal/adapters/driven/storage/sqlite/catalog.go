package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lomap-labs/lomap-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
)

// Catalog is a SQLite-backed place catalog. It holds the local copy of
// places announced to the serving surface; the pod remains the source
// of truth for place detail.
type Catalog struct {
	db   *sql.DB
	path string
}

var _ driven.PlaceCatalog = (*Catalog)(nil)

// NewCatalog opens (or creates) the catalog database under dataDir.
// If dataDir is empty, defaults to ~/.lomap/data/catalog.db.
func NewCatalog(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lomap", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Catalog{
		db:   db,
		path: dbPath,
	}

	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// Save stores or updates a place by its URL.
func (c *Catalog) Save(ctx context.Context, place domain.Place) error {
	if place.URL == "" {
		return domain.ErrInvalidInput
	}

	commentsJSON, err := json.Marshal(place.Comments)
	if err != nil {
		return fmt.Errorf("marshalling comments: %w", err)
	}
	ratingsJSON, err := json.Marshal(place.Ratings)
	if err != nil {
		return fmt.Errorf("marshalling ratings: %w", err)
	}
	photosJSON, err := json.Marshal(place.Photos)
	if err != nil {
		return fmt.Errorf("marshalling photos: %w", err)
	}

	now := time.Now().UTC()

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO places (url, title, lat, lng, description, comments, ratings, photos, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			lat = excluded.lat,
			lng = excluded.lng,
			description = excluded.description,
			comments = excluded.comments,
			ratings = excluded.ratings,
			photos = excluded.photos,
			updated_at = excluded.updated_at
	`, place.URL, place.Title, place.Lat, place.Lng, place.Description,
		string(commentsJSON), string(ratingsJSON), string(photosJSON), now, now)

	if err != nil {
		return fmt.Errorf("saving place: %w", err)
	}
	return nil
}

// List returns all catalogued places ordered by URL.
func (c *Catalog) List(ctx context.Context) ([]domain.Place, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT url, title, lat, lng, description, comments, ratings, photos
		FROM places ORDER BY url
	`)
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var places []domain.Place //nolint:prealloc // size unknown from query
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, *place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating places: %w", err)
	}

	return places, nil
}

// migrate runs all pending migrations.
func (c *Catalog) migrate(fsys embed.FS) error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := c.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// scanPlace scans a place from *sql.Rows.
func scanPlace(rows *sql.Rows) (*domain.Place, error) {
	var place domain.Place
	var description sql.NullString
	var commentsJSON, ratingsJSON, photosJSON string

	if err := rows.Scan(&place.URL, &place.Title, &place.Lat, &place.Lng,
		&description, &commentsJSON, &ratingsJSON, &photosJSON); err != nil {
		return nil, fmt.Errorf("scanning place: %w", err)
	}

	place.Description = description.String

	if err := json.Unmarshal([]byte(commentsJSON), &place.Comments); err != nil {
		return nil, fmt.Errorf("unmarshalling comments: %w", err)
	}
	if err := json.Unmarshal([]byte(ratingsJSON), &place.Ratings); err != nil {
		return nil, fmt.Errorf("unmarshalling ratings: %w", err)
	}
	if err := json.Unmarshal([]byte(photosJSON), &place.Photos); err != nil {
		return nil, fmt.Errorf("unmarshalling photos: %w", err)
	}

	return &place, nil
}
