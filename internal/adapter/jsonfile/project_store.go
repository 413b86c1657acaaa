// Package jsonfile stores the projects database in a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

const fileVersion = 1

// Store implements ports.ProjectStore on top of a JSON file. The whole file
// is read on every call and rewritten on Save.
type Store struct {
	path string
	log  *slog.Logger
}

var _ ports.ProjectStore = (*Store)(nil)

// NewStore returns a store backed by the file at path. The file does not
// need to exist yet.
func NewStore(path string, log *slog.Logger) *Store {
	return &Store{path: path, log: log}
}

type fileContent struct {
	Version  int                        `json:"version"`
	Backends map[string][]storedProject `json:"backends"`
}

type storedActivity struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Rate  float64 `json:"rate"`
	Alias string  `json:"alias,omitempty"`
}

type storedProject struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Budget      float64          `json:"budget"`
	Status      string           `json:"status"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	Team        string           `json:"team,omitempty"`
	Activities  []storedActivity `json:"activities"`
}

const dateLayout = "2006-01-02"

func fromDomain(p domain.Project) storedProject {
	sp := storedProject{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Budget:      p.Budget,
		Status:      p.Status,
		Team:        p.Team,
		Activities:  make([]storedActivity, 0, len(p.Activities)),
	}
	if p.StartDate != nil {
		sp.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		sp.EndDate = p.EndDate.Format(dateLayout)
	}
	for _, a := range p.Activities {
		sp.Activities = append(sp.Activities, storedActivity{ID: a.ID, Name: a.Name, Rate: a.Rate, Alias: a.Alias})
	}
	return sp
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

func (sp storedProject) toDomain(backend string) domain.Project {
	p := domain.Project{
		ID:          sp.ID,
		Backend:     backend,
		Name:        sp.Name,
		Description: sp.Description,
		Budget:      sp.Budget,
		Status:      sp.Status,
		StartDate:   parseDate(sp.StartDate),
		EndDate:     parseDate(sp.EndDate),
		Team:        sp.Team,
		Activities:  make([]domain.Activity, 0, len(sp.Activities)),
		Aliases:     map[string]int64{},
	}
	for _, a := range sp.Activities {
		p.Activities = append(p.Activities, domain.Activity{ID: a.ID, Name: a.Name, Rate: a.Rate, Alias: a.Alias})
		if a.Alias != "" {
			p.Aliases[a.Alias] = a.ID
		}
	}
	return p
}

func (s *Store) read() (fileContent, error) {
	content := fileContent{Version: fileVersion, Backends: map[string][]storedProject{}}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return content, nil
	}
	if err != nil {
		return content, errors.Wrap(err, "read projects db")
	}
	if err := json.Unmarshal(b, &content); err != nil {
		return content, errors.Wrapf(err, "decode projects db %s", s.path)
	}
	if content.Backends == nil {
		content.Backends = map[string][]storedProject{}
	}
	return content, nil
}

// Save replaces the projects stored for backend.
func (s *Store) Save(ctx context.Context, backend string, projects []domain.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	content, err := s.read()
	if err != nil {
		return err
	}
	stored := make([]storedProject, 0, len(projects))
	for _, p := range projects {
		stored = append(stored, fromDomain(p))
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].ID < stored[j].ID })
	content.Backends[backend] = stored
	content.Version = fileVersion

	b, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode projects db")
	}
	if err := writeFile(s.path, b); err != nil {
		return err
	}
	s.log.Info("json projects db updated", slog.String("backend", backend), slog.Int("count", len(projects)))
	return nil
}

// writeFile replaces path atomically.
func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create projects db directory")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".projects-*.json")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write projects db")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "write projects db")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "replace projects db")
	}
	return nil
}

// Get returns the project with the given id, or an apperr.ErrNotFound error.
func (s *Store) Get(ctx context.Context, backend string, id int64) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, sp := range content.Backends[backend] {
		if sp.ID == id {
			p := sp.toDomain(backend)
			return &p, nil
		}
	}
	return nil, apperr.With(apperr.ErrNotFound, "project %d not found", id)
}

// List returns the projects of backend ordered by id. An empty backend
// lists every backend.
func (s *Store) List(ctx context.Context, backend string) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := s.read()
	if err != nil {
		return nil, err
	}
	var out []domain.Project
	for name, projects := range content.Backends {
		if backend != "" && name != backend {
			continue
		}
		for _, sp := range projects {
			out = append(out, sp.toDomain(name))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Backend != out[j].Backend {
			return out[i].Backend < out[j].Backend
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
