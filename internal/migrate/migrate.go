package migrate

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	_ "github.com/go-sql-driver/mysql"

	"taxi-zebra/internal/adapter/mysql"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migration is one embedded schema change.
type Migration struct {
	Version int
	Name    string // file name, e.g. 0001_create_projects.sql
	SQL     string
}

// Run brings the projects database schema up to date. Migrations already
// recorded in schema_migrations are skipped.
func Run(ctx context.Context, dsn string, log *slog.Logger) error {
	migrations, err := Load()
	if err != nil {
		return err
	}
	dsn, err = mysql.PrepareDSN(dsn)
	if err != nil {
		return err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return errors.Wrap(err, "mysql: open")
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return errors.Wrap(err, "mysql: ping")
	}

	if err := ensureMigrationsTable(ctx, db); err != nil {
		return err
	}
	applied, err := loadApplied(ctx, db)
	if err != nil {
		return err
	}

	var n int
	for _, m := range migrations {
		if applied[m.Version] {
			log.Debug("migration already applied", slog.Int("version", m.Version), slog.String("file", m.Name))
			continue
		}
		log.Info("applying migration", slog.Int("version", m.Version), slog.String("file", m.Name))
		if _, err := db.ExecContext(ctx, m.SQL); err != nil {
			return errors.Wrapf(err, "apply %s", m.Name)
		}
		if err := recordApplied(ctx, db, m.Version); err != nil {
			return err
		}
		n++
	}
	log.Info("projects db schema up to date", slog.Int("applied", n), slog.Int("total", len(migrations)))
	return nil
}

// Load reads the embedded migrations ordered by version. File names must
// start with a unique version number followed by an underscore.
func Load() ([]Migration, error) {
	files, err := fs.Glob(migrationsFS, "sql/*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "list migrations")
	}
	out := make([]Migration, 0, len(files))
	seen := make(map[int]string, len(files))
	for _, f := range files {
		name := path.Base(f)
		ver, err := parseVersion(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[ver]; dup {
			return nil, errors.Errorf("migrations %s and %s share version %d", prev, name, ver)
		}
		seen[ver] = name
		b, err := fs.ReadFile(migrationsFS, f)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		out = append(out, Migration{Version: ver, Name: name, SQL: string(b)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

func ensureMigrationsTable(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	applied_at DATETIME(6) NOT NULL
) ENGINE=InnoDB;`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}
	return nil
}

func loadApplied(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, errors.Wrap(err, "read schema_migrations")
	}
	defer rows.Close()
	applied := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, errors.Wrap(err, "scan schema_migrations")
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func recordApplied(ctx context.Context, db *sql.DB, version int) error {
	if _, err := db.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)", version, time.Now().UTC()); err != nil {
		return errors.Wrapf(err, "record migration %d", version)
	}
	return nil
}

func parseVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok || prefix == "" {
		return 0, errors.Errorf("migration %q: name must start with a version number and an underscore", name)
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, errors.Wrapf(err, "migration %q: version", name)
	}
	return v, nil
}
