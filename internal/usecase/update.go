package usecase

import (
	"context"
	"log/slog"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/ports"
)

// UpdateUseCase fetches projects from a backend and stores them in the
// projects database.
type UpdateUseCase struct {
	Log     *slog.Logger
	Backend string
	Source  ports.ProjectSource
	Store   ports.ProjectStore
}

// Run returns the number of projects stored.
func (uc *UpdateUseCase) Run(ctx context.Context) (int, error) {
	if uc.Source == nil || uc.Store == nil {
		return 0, errors.New("usecase not initialized: missing dependencies")
	}
	uc.Log.Info("fetching projects", slog.String("backend", uc.Backend))

	projects, err := uc.Source.GetProjects(ctx)
	if err != nil {
		return 0, err
	}
	uc.Log.Info("fetched projects", slog.String("backend", uc.Backend), slog.Int("count", len(projects)))

	// An empty list still goes to the store: it clears the backend.
	for i := range projects {
		projects[i].Backend = uc.Backend
	}
	if err := uc.Store.Save(ctx, uc.Backend, projects); err != nil {
		return 0, errors.Wrap(err, "store projects")
	}
	return len(projects), nil
}
