// Package catalog implements the SQLite-backed annotation store for
// the genocat CLI. Annotations are named genomic locations in spliced
// notation; the catalog indexes their contiguous cover so overlap
// queries run against plain integer columns.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/biotypes/pkg/annot"
)

var (
	ErrClosed      = errors.New("catalog is closed")
	ErrNotFound    = errors.New("annotation not found")
	ErrInvalidID   = errors.New("invalid annotation ID")
	ErrInvalidName = errors.New("invalid annotation name")
)

// Annotation is one catalog entry: a named genomic location.
type Annotation struct {
	ID        string
	Name      string
	Location  annot.Spliced
	CreatedAt time.Time
}

// Catalog is a SQLite-backed store of annotations. It is safe for
// concurrent use.
type Catalog struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates dataDir if needed and opens (or creates) the catalog
// database inside it.
func Open(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	return &Catalog{db: db}, nil
}

// Close releases the database handle. Further calls return ErrClosed.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// newID returns a time-ordered unique annotation ID.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Add stores a new annotation under a generated ID. The location must
// parse in spliced notation, for example "chrX:100-200(+)" or
// "chrV:166236-166873;166998-167368(+)".
func (c *Catalog) Add(name, location string) (*Annotation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil, ErrClosed
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	loc, err := annot.ParseSpliced(location)
	if err != nil {
		return nil, fmt.Errorf("parse location %q: %w", location, err)
	}

	a := &Annotation{
		ID:        newID(),
		Name:      name,
		Location:  loc,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	cover := loc.ContigCover()
	_, err = c.db.Exec(
		`INSERT INTO annotations
		    (annotation_id, name, location, refid, start_pos, end_pos, strand, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, loc.String(),
		cover.Refid(), cover.Start(), cover.Start()+cover.Length(), loc.Strand().Symbol(),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("insert annotation %s: %w", a.Name, err)
	}
	return a, nil
}

// Get retrieves an annotation by ID.
func (c *Catalog) Get(id string) (*Annotation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, ErrClosed
	}
	if id == "" {
		return nil, ErrInvalidID
	}

	row := c.db.QueryRow(
		"SELECT annotation_id, name, location, created_at FROM annotations WHERE annotation_id = ?",
		id,
	)
	a, err := hydrate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting annotation %s: %w", id, err)
	}
	return a, nil
}

// List returns all annotations ordered by reference and start
// coordinate.
func (c *Catalog) List() ([]*Annotation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, ErrClosed
	}
	return c.query(
		"SELECT annotation_id, name, location, created_at FROM annotations ORDER BY refid, start_pos, end_pos",
	)
}

// Delete removes an annotation by ID. Deleting an unknown ID returns
// ErrNotFound.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}
	if id == "" {
		return ErrInvalidID
	}

	res, err := c.db.Exec("DELETE FROM annotations WHERE annotation_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting annotation %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Overlapping returns the annotations whose contiguous cover overlaps
// the query contig, ordered by start coordinate. Strand is ignored;
// coordinates are half-open, so touching intervals do not overlap.
func (c *Catalog) Overlapping(query annot.Contig) ([]*Annotation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, ErrClosed
	}
	return c.query(
		`SELECT annotation_id, name, location, created_at FROM annotations
		 WHERE refid = ? AND start_pos < ? AND end_pos > ?
		 ORDER BY start_pos, end_pos`,
		query.Refid(), query.Start()+query.Length(), query.Start(),
	)
}

func (c *Catalog) query(q string, args ...any) ([]*Annotation, error) {
	rows, err := c.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []*Annotation
	for rows.Next() {
		a, err := hydrate(rows)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	return annotations, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrate converts a row into an Annotation, re-parsing the stored
// location string.
func hydrate(row scanner) (*Annotation, error) {
	var a Annotation
	var location, createdAt string
	if err := row.Scan(&a.ID, &a.Name, &location, &createdAt); err != nil {
		return nil, err
	}

	loc, err := annot.ParseSpliced(location)
	if err != nil {
		return nil, fmt.Errorf("stored location %q: %w", location, err)
	}
	a.Location = loc

	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("stored timestamp %q: %w", createdAt, err)
	}
	return &a, nil
}
