// Package aliases holds the alias database: configured aliases, which can be
// updated and persisted, and aliases derived from the activities of stored
// projects.
package aliases

import (
	"sort"
	"strconv"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

// Persister writes an alias mapping to durable storage.
type Persister func(alias string, m domain.Mapping) error

// Database implements ports.AliasStore.
type Database struct {
	configured map[string]domain.Mapping
	derived    map[string]domain.Mapping
	persist    Persister
}

var _ ports.AliasStore = (*Database)(nil)

// New builds a database from the configured aliases. persist may be nil, in
// which case updates only live in memory.
func New(configured map[string]domain.Mapping, persist Persister) *Database {
	db := &Database{
		configured: make(map[string]domain.Mapping, len(configured)),
		derived:    map[string]domain.Mapping{},
		persist:    persist,
	}
	for k, v := range configured {
		db.configured[k] = v
	}
	return db
}

// SetProjects replaces the aliases derived from project activities with the
// ones defined on projects. Configured aliases take precedence.
func (db *Database) SetProjects(projects []domain.Project) {
	db.derived = map[string]domain.Mapping{}
	for _, p := range projects {
		for alias, activityID := range p.Aliases {
			db.derived[alias] = domain.Mapping{
				Backend:    p.Backend,
				ProjectID:  strconv.FormatInt(p.ID, 10),
				ActivityID: strconv.FormatInt(activityID, 10),
			}
		}
	}
}

// Get implements ports.AliasStore.
func (db *Database) Get(alias string) (domain.Mapping, bool) {
	if m, ok := db.configured[alias]; ok {
		return m, true
	}
	m, ok := db.derived[alias]
	return m, ok
}

// Update implements ports.AliasStore. The alias becomes a configured alias.
func (db *Database) Update(alias string, m domain.Mapping) error {
	if db.persist != nil {
		if err := db.persist(alias, m); err != nil {
			return errors.Wrapf(err, "save alias %q", alias)
		}
	}
	db.configured[alias] = m
	return nil
}

// Entry is an alias with its mapping, used for listings.
type Entry struct {
	Name    string
	Mapping domain.Mapping
	Derived bool
}

// List returns every alias sorted by name.
func (db *Database) List() []Entry {
	out := make([]Entry, 0, len(db.configured)+len(db.derived))
	for name, m := range db.configured {
		out = append(out, Entry{Name: name, Mapping: m})
	}
	for name, m := range db.derived {
		if _, ok := db.configured[name]; ok {
			continue
		}
		out = append(out, Entry{Name: name, Mapping: m, Derived: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
