package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cwbudde/algo-rema/binned"
)

// Kind distinguishes the two object shapes a container can hold.
type Kind string

// Object kinds.
const (
	KindArray  Kind = "array"
	KindMatrix Kind = "matrix"
)

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Name string
	Kind Kind
	Rows int
	Cols int
}

// Container is an open container file.
type Container struct {
	db   *sql.DB
	path string
}

// Create creates a new, empty container at path. An existing file at path
// is replaced.
func Create(ctx context.Context, path string) (*Container, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to replace %s: %w", path, err)
	}

	c, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := InitSchema(ctx, c.db); err != nil {
		c.db.Close()
		return nil, fmt.Errorf("failed to initialize %s: %w", path, err)
	}
	return c, nil
}

// Open opens an existing container. It fails if path does not exist or is
// not a container file.
func Open(ctx context.Context, path string) (*Container, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open container: %w", err)
	}

	c, err := openDB(path)
	if err != nil {
		return nil, err
	}
	ok, err := hasSchema(ctx, c.db)
	if err != nil {
		c.db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrNotContainer, path, err)
	}
	if !ok {
		c.db.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, path)
	}
	return c, nil
}

func openDB(path string) (*Container, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Container{db: db, path: path}, nil
}

// Path returns the file the container was opened from.
func (c *Container) Path() string {
	return c.path
}

// Close releases the underlying database handle.
func (c *Container) Close() error {
	return c.db.Close()
}

// PutArray stores values under name, replacing any existing object.
func (c *Container) PutArray(ctx context.Context, name string, values []float64) error {
	return c.put(ctx, name, KindArray, 1, len(values), func(row int) []float64 {
		return values
	})
}

// PutMatrix stores m under name, replacing any existing object.
func (c *Container) PutMatrix(ctx context.Context, name string, m *binned.Matrix) error {
	return c.put(ctx, name, KindMatrix, m.N(), m.N(), func(row int) []float64 {
		return m.Row(row + 1)
	})
}

func (c *Container) put(ctx context.Context, name string, kind Kind, rows, cols int, rowAt func(int) []float64) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM object_rows WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to clear %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO objects (name, kind, rows, cols) VALUES (?, ?, ?, ?)`,
		name, string(kind), rows, cols); err != nil {
		return fmt.Errorf("failed to write %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO object_rows (name, row, data) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare row insert: %w", err)
	}
	defer stmt.Close()

	for r := 0; r < rows; r++ {
		if _, err := stmt.ExecContext(ctx, name, r, encodeRow(rowAt(r))); err != nil {
			return fmt.Errorf("failed to write %q row %d: %w", name, r, err)
		}
	}
	return tx.Commit()
}

// Info returns the description of the named object.
func (c *Container) Info(ctx context.Context, name string) (ObjectInfo, error) {
	info := ObjectInfo{Name: name}
	var kind string
	err := c.db.QueryRowContext(ctx,
		`SELECT kind, rows, cols FROM objects WHERE name = ?`, name).Scan(&kind, &info.Rows, &info.Cols)
	if errors.Is(err, sql.ErrNoRows) {
		return ObjectInfo{}, notFound(c.path, name)
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to look up %q: %w", name, err)
	}
	info.Kind = Kind(kind)
	return info, nil
}

// Has reports whether an object called name exists.
func (c *Container) Has(ctx context.Context, name string) (bool, error) {
	_, err := c.Info(ctx, name)
	if errors.Is(err, ErrObjectNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Objects lists all stored objects ordered by name.
func (c *Container) Objects(ctx context.Context) ([]ObjectInfo, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name, kind, rows, cols FROM objects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer rows.Close()

	var out []ObjectInfo
	for rows.Next() {
		var info ObjectInfo
		var kind string
		if err := rows.Scan(&info.Name, &kind, &info.Rows, &info.Cols); err != nil {
			return nil, fmt.Errorf("failed to scan object: %w", err)
		}
		info.Kind = Kind(kind)
		out = append(out, info)
	}
	return out, rows.Err()
}

// Array returns a copy of the named array object.
func (c *Container) Array(ctx context.Context, name string) ([]float64, error) {
	a := binned.NewArray(0)
	if err := c.ReadArrayInto(ctx, name, a); err != nil {
		return nil, err
	}
	return a.Values(), nil
}

// ReadArrayInto reads the named array object into dst, resizing it to the
// stored length and reusing its capacity.
func (c *Container) ReadArrayInto(ctx context.Context, name string, dst *binned.Array) error {
	info, err := c.Info(ctx, name)
	if err != nil {
		return err
	}
	if info.Kind != KindArray {
		return fmt.Errorf("%w: %q in %s is a %s", ErrKindMismatch, name, c.path, info.Kind)
	}

	dst.Resize(info.Cols)
	return c.readRows(ctx, info, func(int) []float64 { return dst.Values() })
}

// Matrix returns the named square matrix object.
func (c *Container) Matrix(ctx context.Context, name string) (*binned.Matrix, error) {
	info, err := c.Info(ctx, name)
	if err != nil {
		return nil, err
	}
	if info.Kind != KindMatrix {
		return nil, fmt.Errorf("%w: %q in %s is a %s", ErrKindMismatch, name, c.path, info.Kind)
	}
	if info.Rows != info.Cols {
		return nil, fmt.Errorf("%w: %q is %dx%d", ErrCorrupt, name, info.Rows, info.Cols)
	}

	m := binned.NewMatrix(info.Rows)
	if err := c.readRows(ctx, info, func(r int) []float64 { return m.Row(r + 1) }); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *Container) readRows(ctx context.Context, info ObjectInfo, rowAt func(int) []float64) error {
	rows, err := c.db.QueryContext(ctx,
		`SELECT row, data FROM object_rows WHERE name = ? ORDER BY row`, info.Name)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", info.Name, err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var r int
		var blob []byte
		if err := rows.Scan(&r, &blob); err != nil {
			return fmt.Errorf("failed to scan %q: %w", info.Name, err)
		}
		if r < 0 || r >= info.Rows || !decodeRow(rowAt(r), blob) {
			return fmt.Errorf("%w: %q row %d", ErrCorrupt, info.Name, r)
		}
		seen++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read %q: %w", info.Name, err)
	}
	if seen != info.Rows {
		return fmt.Errorf("%w: %q has %d of %d rows", ErrCorrupt, info.Name, seen, info.Rows)
	}
	return nil
}
