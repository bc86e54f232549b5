// Package snapshot loads YAML exports of a learning platform into the store.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/ganot/coursepulse/internal/sqlite"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Snapshot is a point-in-time export of catalog, progress and sessions.
type Snapshot struct {
	Courses  []catalog.Course           `yaml:"courses" validate:"dive"`
	Modules  []catalog.Module           `yaml:"modules" validate:"dive"`
	Lessons  []catalog.Lesson           `yaml:"lessons" validate:"dive"`
	Progress []progress.Record          `yaml:"progress" validate:"dive"`
	Sessions []engagement.SessionRecord `yaml:"sessions" validate:"dive"`
}

// CatalogWriter persists catalog entities.
type CatalogWriter interface {
	CreateCourse(ctx context.Context, c catalog.Course) error
	CreateModule(ctx context.Context, m catalog.Module) error
	CreateLesson(ctx context.Context, l catalog.Lesson) error
}

// ProgressWriter persists progress records.
type ProgressWriter interface {
	Upsert(ctx context.Context, rec progress.Record) error
}

// SessionWriter persists learning sessions.
type SessionWriter interface {
	Create(ctx context.Context, sess *engagement.SessionRecord) error
}

// Store groups the writers an import goes through.
type Store struct {
	Catalog  CatalogWriter
	Progress ProgressWriter
	Sessions SessionWriter
}

// Summary counts what an import wrote.
type Summary struct {
	Courses  int `json:"courses"`
	Modules  int `json:"modules"`
	Lessons  int `json:"lessons"`
	Progress int `json:"progress"`
	Sessions int `json:"sessions"`
}

// Load reads and parses a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Validate checks required fields on every entry.
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	return nil
}

// ImportDB writes the snapshot into db in a single transaction. Either every
// entry is stored or, on the first failing write, none is, so a corrected
// snapshot can be imported again.
func ImportDB(ctx context.Context, db *sqlite.DB, snap *Snapshot) (Summary, error) {
	var sum Summary
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		sum, err = Import(ctx, Store{
			Catalog:  sqlite.NewCatalogRepository(tx),
			Progress: sqlite.NewProgressRepository(tx),
			Sessions: sqlite.NewSessionRepository(tx),
		}, snap)
		return err
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// Import writes the snapshot through the store. Parents are written before
// children; it stops at the first failing write. Atomicity is up to the
// store; see ImportDB.
func Import(ctx context.Context, store Store, snap *Snapshot) (Summary, error) {
	var sum Summary
	if snap == nil {
		return sum, nil
	}

	for _, c := range snap.Courses {
		if err := store.Catalog.CreateCourse(ctx, c); err != nil {
			return sum, fmt.Errorf("importing course %q: %w", c.ID, err)
		}
		sum.Courses++
	}
	for _, m := range snap.Modules {
		if err := store.Catalog.CreateModule(ctx, m); err != nil {
			return sum, fmt.Errorf("importing module %q: %w", m.ID, err)
		}
		sum.Modules++
	}
	for _, l := range snap.Lessons {
		if err := store.Catalog.CreateLesson(ctx, l); err != nil {
			return sum, fmt.Errorf("importing lesson %q: %w", l.ID, err)
		}
		sum.Lessons++
	}
	for _, rec := range snap.Progress {
		if err := store.Progress.Upsert(ctx, rec); err != nil {
			return sum, fmt.Errorf("importing progress %s/%s: %w", rec.UserID, rec.LessonID, err)
		}
		sum.Progress++
	}
	for i := range snap.Sessions {
		if err := store.Sessions.Create(ctx, &snap.Sessions[i]); err != nil {
			return sum, fmt.Errorf("importing session for %q: %w", snap.Sessions[i].UserID, err)
		}
		sum.Sessions++
	}
	return sum, nil
}
