//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	msql "taxi-zebra/internal/adapter/mysql"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/logger"
	"taxi-zebra/internal/migrate"
	"taxi-zebra/internal/usecase"
)

type fakeSource struct{ projects []domain.Project }

func (f *fakeSource) GetProjects(context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(f.projects))
	copy(out, f.projects)
	return out, nil
}

func startMySQL(t *testing.T, ctx context.Context) string {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_DATABASE":      "testdb",
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_USER":          "test",
			"MYSQL_PASSWORD":      "pass",
		},
		WaitingFor: wait.ForListeningPort("3306/tcp").WithStartupTimeout(90 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start mysql container: %v", err)
	}
	t.Cleanup(func() { _ = mysqlC.Terminate(context.Background()) })

	host, err := mysqlC.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := mysqlC.MappedPort(ctx, "3306/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", "test", "pass", host, port.Port(), "testdb")
}

func TestUpdateToMySQL_UpsertsProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	ctx := context.Background()
	dsn := startMySQL(t, ctx)

	log := logger.New(testWriter{t}, logger.DevelopmentEnvironment, true)
	if err := migrate.Run(ctx, dsn, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// a second run must be a no-op
	if err := migrate.Run(ctx, dsn, log); err != nil {
		t.Fatalf("migrate 2: %v", err)
	}
	store, err := msql.NewClient(ctx, dsn, log)
	if err != nil {
		t.Fatalf("mysql client: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{projects: []domain.Project{
		{ID: 1, Name: "Internal", Team: "7", Budget: 100, StartDate: &start, Activities: []domain.Activity{
			{ID: 10, Name: "Meeting", Alias: "_meeting"},
			{ID: 11, Name: "Support", Rate: 120},
		}},
		{ID: 2, Name: "Website", Activities: []domain.Activity{{ID: 20, Name: "Development"}}},
	}}
	uc := &usecase.UpdateUseCase{Log: log, Backend: "zebra", Source: src, Store: store}

	n, err := uc.Run(ctx)
	if err != nil {
		t.Fatalf("update run: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 projects, got %d", n)
	}

	p, err := store.Get(ctx, "zebra", 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Internal" || p.Team != "7" || len(p.Activities) != 2 {
		t.Fatalf("unexpected project: %+v", p)
	}
	if p.Aliases["_meeting"] != 10 {
		t.Fatalf("expected alias _meeting -> 10, got %v", p.Aliases)
	}
	if p.StartDate == nil || !p.StartDate.Equal(start) {
		t.Fatalf("unexpected start date: %v", p.StartDate)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("sql open: %v", err)
	}
	defer db.Close()

	// Run again without the website project: rows are upserted and the
	// missing project is removed
	src.projects = src.projects[:1]
	if _, err := uc.Run(ctx); err != nil {
		t.Fatalf("update run 2: %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM zebra_projects").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 project after second update, got %d", count)
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM zebra_activities").Scan(&count); err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 activities after second update, got %d", count)
	}

	list, err := store.List(ctx, "zebra")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("unexpected projects: %+v", list)
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
