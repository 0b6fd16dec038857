// SPDX-License-Identifier: MIT
// Package: commodel/results
//
// store.go - gorm-backed run store.

package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/redcom"
)

// Run kinds.
const (
	KindFBA      = "fba"
	KindRedCom   = "redcom"
	KindMinimal  = "minimal"
	KindBalanced = "balanced"
)

// ErrNotFound indicates an unknown run id.
var ErrNotFound = errors.New("results: run not found")

// Run is one stored optimisation.
type Run struct {
	ID         string            `gorm:"column:id;type:text;primaryKey" json:"id"`
	Kind       string            `gorm:"column:kind;type:text;not null;index" json:"kind"`
	ModelID    string            `gorm:"column:model_id;type:text;not null;index" json:"model_id"`
	GrowthRate float64           `gorm:"column:growth_rate" json:"growth_rate"`
	Status     string            `gorm:"column:status;type:text;not null" json:"status"`
	Objective  float64           `gorm:"column:objective" json:"objective"`
	Fractions  datatypes.JSONMap `gorm:"column:fractions" json:"fractions,omitempty"`
	Activity   datatypes.JSONMap `gorm:"column:activity" json:"activity,omitempty"`
	Indicators datatypes.JSONMap `gorm:"column:indicators" json:"indicators,omitempty"`
	Summary    string            `gorm:"column:summary;type:text" json:"summary,omitempty"`
	CreatedAt  time.Time         `gorm:"index" json:"created_at"`
}

// TableName pins the table name.
func (Run) TableName() string { return "runs" }

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("results: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save inserts run, assigning a new id when it has none.
func (s *Store) Save(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("results: save %s: %w", run.ID, err)
	}
	return nil
}

// Get returns the run with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("results: get %s: %w", id, err)
	}
	return &run, nil
}

// Runs lists stored runs, newest first. An empty kind lists every kind.
func (s *Store) Runs(ctx context.Context, kind string) ([]Run, error) {
	q := s.db.WithContext(ctx).Order("created_at desc").Order("id")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("results: list: %w", err)
	}
	return runs, nil
}

// Patterns returns the indicator patterns of the optimal minimal-species
// runs stored for modelID at growth rate mu, oldest first.
func (s *Store) Patterns(ctx context.Context, modelID string, mu float64) ([]redcom.Pattern, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Where("kind = ? AND model_id = ? AND growth_rate = ? AND status = ?", KindMinimal, modelID, mu, "optimal").
		Order("created_at").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("results: patterns: %w", err)
	}
	out := make([]redcom.Pattern, 0, len(runs))
	for _, r := range runs {
		out = append(out, toPattern(r.Indicators))
	}
	return out, nil
}

// FromResult converts a RedCom result into a Run.
func FromResult(kind, modelID string, mu float64, res *redcom.Result) *Run {
	run := &Run{
		Kind:       kind,
		ModelID:    modelID,
		GrowthRate: mu,
		Status:     res.Status.String(),
		Objective:  res.Objective,
	}
	if res.Fractions != nil {
		run.Fractions = datatypes.JSONMap{}
		for sp, f := range res.Fractions {
			run.Fractions[sp] = f
		}
	}
	run.Activity = fromPattern(res.Activity)
	run.Indicators = fromPattern(res.Indicators)
	if res.Summary != nil {
		run.Summary = res.Summary.String()
	}
	return run
}

// FromSolution converts a plain flux balance solution into a Run.
func FromSolution(kind, modelID string, mu float64, sol *fluxnet.Solution) *Run {
	return &Run{
		Kind:       kind,
		ModelID:    modelID,
		GrowthRate: mu,
		Status:     sol.Status.String(),
		Objective:  sol.ObjectiveValue,
	}
}

func fromPattern(p redcom.Pattern) datatypes.JSONMap {
	if p == nil {
		return nil
	}
	m := make(datatypes.JSONMap, len(p))
	for sp, v := range p {
		m[sp] = v
	}
	return m
}

// FractionMap returns the stored fractions as floats.
func (r *Run) FractionMap() map[string]float64 {
	out := make(map[string]float64, len(r.Fractions))
	for sp, v := range r.Fractions {
		out[sp] = number(v)
	}
	return out
}

func toPattern(m datatypes.JSONMap) redcom.Pattern {
	p := make(redcom.Pattern, len(m))
	for sp, v := range m {
		p[sp] = int(number(v) + 0.5)
	}
	return p
}

// number accepts the shapes a JSON column value can come back as.
func number(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, _ := n.Float64()
		return f
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
