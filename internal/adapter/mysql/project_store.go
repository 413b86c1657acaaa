package mysql

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/go-faster/errors"
	gomysql "github.com/go-sql-driver/mysql"

	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

// Client implements ports.ProjectStore on MySQL tables created by the
// migrate package.
type Client struct {
	db  *sql.DB
	log *slog.Logger
}

var _ ports.ProjectStore = (*Client)(nil)

// PrepareDSN forces the options the store relies on: parsed DATE columns
// and multi statement migrations.
func PrepareDSN(dsn string) (string, error) {
	if dsn == "" {
		return "", errors.New("mysql: DSN is required")
	}
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return "", errors.Wrap(err, "mysql: parse DSN")
	}
	cfg.ParseTime = true
	cfg.MultiStatements = true
	return cfg.FormatDSN(), nil
}

// NewClient opens a MySQL connection using the provided DSN.
// Example DSN: user:pass@tcp(host:3306)/taxi
func NewClient(ctx context.Context, dsn string, log *slog.Logger) (*Client, error) {
	dsn, err := PrepareDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "mysql: ping")
	}
	return &Client{db: db, log: log}, nil
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format("2006-01-02")
}

// Save upserts the projects of backend and removes the ones Zebra no longer
// returns.
func (c *Client) Save(ctx context.Context, backend string, projects []domain.Project) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	syncedAt := time.Now().UTC().Truncate(time.Microsecond)

	const qProject = `
INSERT INTO zebra_projects
  (backend, id, name, description, budget, status, start_date, end_date, team, synced_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name=VALUES(name),
  description=VALUES(description),
  budget=VALUES(budget),
  status=VALUES(status),
  start_date=VALUES(start_date),
  end_date=VALUES(end_date),
  team=VALUES(team),
  synced_at=VALUES(synced_at);
`
	const qActivity = `
INSERT INTO zebra_activities
  (backend, project_id, id, name, rate, alias, synced_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name=VALUES(name),
  rate=VALUES(rate),
  alias=VALUES(alias),
  synced_at=VALUES(synced_at);
`
	projectStmt, err := tx.PrepareContext(ctx, qProject)
	if err != nil {
		return err
	}
	defer projectStmt.Close()
	activityStmt, err := tx.PrepareContext(ctx, qActivity)
	if err != nil {
		return err
	}
	defer activityStmt.Close()

	for _, p := range projects {
		if _, err := projectStmt.ExecContext(ctx,
			backend, p.ID, p.Name, p.Description, p.Budget, p.Status,
			nullDate(p.StartDate), nullDate(p.EndDate), p.Team, syncedAt,
		); err != nil {
			return errors.Wrapf(err, "upsert project %d", p.ID)
		}
		for _, a := range p.Activities {
			if _, err := activityStmt.ExecContext(ctx,
				backend, p.ID, a.ID, a.Name, a.Rate, a.Alias, syncedAt,
			); err != nil {
				return errors.Wrapf(err, "upsert activity %d of project %d", a.ID, p.ID)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM zebra_activities WHERE backend = ? AND synced_at <> ?", backend, syncedAt); err != nil {
		return errors.Wrap(err, "delete stale activities")
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM zebra_projects WHERE backend = ? AND synced_at <> ?", backend, syncedAt); err != nil {
		return errors.Wrap(err, "delete stale projects")
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	c.log.Info("mysql projects db upserted projects", slog.String("backend", backend), slog.Int("count", len(projects)))
	return nil
}

const selectProjects = `
SELECT backend, id, name, description, budget, status, start_date, end_date, team
FROM zebra_projects`

func scanProject(rows interface{ Scan(...any) error }) (domain.Project, error) {
	var (
		p          domain.Project
		start, end sql.NullTime
	)
	if err := rows.Scan(&p.Backend, &p.ID, &p.Name, &p.Description, &p.Budget, &p.Status, &start, &end, &p.Team); err != nil {
		return domain.Project{}, err
	}
	if start.Valid {
		t := start.Time
		p.StartDate = &t
	}
	if end.Valid {
		t := end.Time
		p.EndDate = &t
	}
	p.Aliases = map[string]int64{}
	return p, nil
}

// Get returns the project with the given id, or an apperr.ErrNotFound error.
func (c *Client) Get(ctx context.Context, backend string, id int64) (*domain.Project, error) {
	row := c.db.QueryRowContext(ctx, selectProjects+" WHERE backend = ? AND id = ?", backend, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.With(apperr.ErrNotFound, "project %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	projects := []domain.Project{p}
	if err := c.loadActivities(ctx, backend, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

// List returns the projects of backend ordered by id. An empty backend
// lists every backend.
func (c *Client) List(ctx context.Context, backend string) ([]domain.Project, error) {
	q, args := selectProjects+" ORDER BY backend, id", []any{}
	if backend != "" {
		q, args = selectProjects+" WHERE backend = ? ORDER BY id", []any{backend}
	}
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := c.loadActivities(ctx, backend, out); err != nil {
		return nil, err
	}
	return out, nil
}

// loadActivities attaches activities to projects.
func (c *Client) loadActivities(ctx context.Context, backend string, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	type key struct {
		backend string
		id      int64
	}
	index := make(map[key]int, len(projects))
	for i, p := range projects {
		index[key{p.Backend, p.ID}] = i
	}

	q, args := "SELECT backend, project_id, id, name, rate, alias FROM zebra_activities ORDER BY id", []any{}
	if backend != "" {
		q, args = "SELECT backend, project_id, id, name, rate, alias FROM zebra_activities WHERE backend = ? ORDER BY id", []any{backend}
	}
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			k key
			a domain.Activity
		)
		if err := rows.Scan(&k.backend, &k.id, &a.ID, &a.Name, &a.Rate, &a.Alias); err != nil {
			return err
		}
		i, ok := index[k]
		if !ok {
			continue
		}
		projects[i].Activities = append(projects[i].Activities, a)
		if a.Alias != "" {
			projects[i].Aliases[a.Alias] = a.ID
		}
	}
	return rows.Err()
}

// Close closes the underlying DB.
func (c *Client) Close() error { return c.db.Close() }
