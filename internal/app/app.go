package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/adapter/jsonfile"
	msql "taxi-zebra/internal/adapter/mysql"
	"taxi-zebra/internal/aliases"
	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/backend"
	"taxi-zebra/internal/config"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/migrate"
	"taxi-zebra/internal/ports"
	"taxi-zebra/internal/ui"
	"taxi-zebra/internal/usecase"
)

// Options are the process level inputs of an App.
type Options struct {
	In      io.Reader
	Out     io.Writer
	NoColor bool
	Version string
	// HTTPClient, when set, is used by every backend instead of a client
	// built from the configured timeout.
	HTTPClient *http.Client
}

// App wires adapters and use cases.
type App struct {
	log      *slog.Logger
	cfg      *config.Config
	opts     Options
	store    ports.ProjectStore
	close    func() error
	aliases  *aliases.Database
	tty      *ui.TTY
	backends map[string]backend.Backend
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config, opts Options) (*App, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	a := &App{
		log:      log,
		cfg:      cfg,
		opts:     opts,
		close:    func() error { return nil },
		tty:      ui.NewTTY(opts.In, opts.Out, opts.NoColor),
		backends: map[string]backend.Backend{},
	}

	if dsn := cfg.ProjectsDB.MySQLDSN; dsn != "" {
		// Run migrations before opening the store for use
		if err := migrate.Run(ctx, dsn, log); err != nil {
			return nil, err
		}
		store, err := msql.NewClient(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		a.store, a.close = store, store.Close
	} else {
		a.store = jsonfile.NewStore(cfg.ProjectsDB.Path, log)
	}

	mappings, err := cfg.Mappings()
	if err != nil {
		return nil, err
	}
	a.aliases = aliases.New(mappings, cfg.SaveAlias)
	projects, err := a.store.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "load projects")
	}
	a.aliases.SetProjects(projects)

	return a, nil
}

// Close releases the projects database.
func (a *App) Close() error { return a.close() }

// Backend opens, or returns the already opened, backend configured as name.
func (a *App) Backend(name string) (backend.Backend, error) {
	if b, ok := a.backends[name]; ok {
		return b, nil
	}
	rawURL, ok := a.cfg.Backends[name]
	if !ok {
		return nil, apperr.With(apperr.ErrInvalidConfig, "unknown backend %q", name)
	}
	b, err := backend.Open(name, rawURL, backend.Context{
		Aliases:  a.aliases,
		Projects: a.store,
		Prompter: a.tty,
		Out:      a.opts.Out,
		Log:      a.log,
		Version:  a.opts.Version,
		Timeout:  a.cfg.HTTP.Timeout,

		HTTPClient: a.opts.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	a.backends[name] = b
	return b, nil
}

// ZebraBackendNames returns the configured backends using the zebra scheme.
func (a *App) ZebraBackendNames() []string {
	var out []string
	for _, name := range a.cfg.BackendNames() {
		u, err := url.Parse(a.cfg.Backends[name])
		if err == nil && u.Scheme == ZebraScheme {
			out = append(out, name)
		}
	}
	return out
}

// Zebra returns the zebra backend configured as name, or the first one when
// name is empty.
func (a *App) Zebra(name string) (*ZebraBackend, error) {
	if name == "" {
		names := a.ZebraBackendNames()
		if len(names) == 0 {
			return nil, apperr.With(apperr.ErrInvalidConfig, "no zebra backend configured")
		}
		name = names[0]
	}
	b, err := a.Backend(name)
	if err != nil {
		return nil, err
	}
	zb, ok := b.(*ZebraBackend)
	if !ok {
		return nil, apperr.With(apperr.ErrInvalidConfig, "backend %q is not a zebra backend", name)
	}
	return zb, nil
}

// Balance computes the hours balance on the zebra backend name.
func (a *App) Balance(ctx context.Context, name string, pending float64) (usecase.Balance, error) {
	zb, err := a.Zebra(name)
	if err != nil {
		return usecase.Balance{}, err
	}
	uc := &usecase.BalanceUseCase{Log: a.log, Zebra: zb.Client()}
	return uc.Run(ctx, pending)
}

// Update fetches the projects of every zebra backend and stores them.
// It returns the number of projects stored per backend.
func (a *App) Update(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, name := range a.ZebraBackendNames() {
		b, err := a.Backend(name)
		if err != nil {
			return counts, err
		}
		uc := &usecase.UpdateUseCase{Log: a.log, Backend: name, Source: b, Store: a.store}
		n, err := uc.Run(ctx)
		if err != nil {
			return counts, errors.Wrapf(err, "update %s", name)
		}
		counts[name] = n
	}
	projects, err := a.store.List(ctx, "")
	if err != nil {
		return counts, errors.Wrap(err, "load projects")
	}
	a.aliases.SetProjects(projects)
	return counts, nil
}

// Projects lists stored projects whose name or activities match search.
// An empty search matches everything.
func (a *App) Projects(ctx context.Context, search string) ([]domain.Project, error) {
	projects, err := a.store.List(ctx, "")
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	out := projects[:0]
	for _, p := range projects {
		if search == "" || p.Matches(search) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Backend != out[j].Backend {
			return out[i].Backend < out[j].Backend
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Push pushes entry on date through the backend its alias is mapped to.
func (a *App) Push(ctx context.Context, date time.Time, entry domain.TimeEntry) (string, error) {
	m, ok := a.aliases.Get(entry.Alias)
	if !ok {
		return "", apperr.With(apperr.ErrPushFailed, "Unknown alias %s", entry.Alias)
	}
	var (
		b   backend.Backend
		err error
	)
	if m.Backend == "" {
		b, err = a.Zebra("")
	} else {
		b, err = a.Backend(m.Backend)
	}
	if err != nil {
		return "", err
	}
	return b.PushEntry(ctx, date, entry)
}

// Aliases lists configured and derived aliases.
func (a *App) Aliases() []aliases.Entry { return a.aliases.List() }

// UI is the terminal the app talks to.
func (a *App) UI() *ui.TTY { return a.tty }
