package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

// Zebra error codes the push flow reacts to.
const (
	errorCodeRoleNeeded  = "role_needed"
	errorCodeRoleInvalid = "role_invalid"
)

// PushOutcome is what a successful push reports back.
type PushOutcome struct {
	RoleID   string // role the entry was pushed in, empty for none
	Messages []ports.ResponseMessage
}

// PushUseCase pushes time entries to Zebra, asking the user for a role when
// the activity requires one.
type PushUseCase struct {
	Log      *slog.Logger
	Backend  string
	Zebra    ports.ZebraClient
	Aliases  ports.AliasStore
	Projects ports.ProjectStore // optional, used to highlight team roles
	Prompter ports.RolePrompter

	// latestRoles maps activity id to the role last used on it. Roles chosen
	// during this session override what Zebra reported.
	latestRoles  map[string]string
	latestLoaded bool
}

// Push pushes entry on date.
func (uc *PushUseCase) Push(ctx context.Context, date time.Time, entry domain.TimeEntry) (PushOutcome, error) {
	if uc.Zebra == nil || uc.Aliases == nil || uc.Prompter == nil {
		return PushOutcome{}, errors.New("usecase not initialized: missing dependencies")
	}
	mapping, ok := uc.Aliases.Get(entry.Alias)
	if !ok {
		return PushOutcome{}, apperr.With(apperr.ErrPushFailed, "Unknown alias %s", entry.Alias)
	}

	params := ports.PushParams{
		Date:        date,
		Time:        entry.Duration,
		ProjectID:   mapping.ProjectID,
		ActivityID:  mapping.ActivityID,
		RoleID:      mapping.PushRoleID(),
		Description: entry.Description,
	}
	res, err := uc.push(ctx, params)
	if err != nil {
		return PushOutcome{}, err
	}

	if !res.OK && res.ErrorCode == errorCodeRoleNeeded {
		uc.Log.Debug("activity requires a role", slog.String("alias", entry.Alias))
		role, err := uc.promptRole(ctx, entry, mapping)
		if err != nil {
			return PushOutcome{}, err
		}
		individual := role == nil
		params.IndividualAction = &individual
		params.RoleID = ""
		if role != nil {
			params.RoleID = role.ID
		}
		if res, err = uc.push(ctx, params); err != nil {
			return PushOutcome{}, err
		}
	}

	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "Unknown error"
		}
		return PushOutcome{}, apperr.With(apperr.ErrPushFailed, "%s", msg)
	}

	if params.RoleID != "" {
		uc.rememberRole(mapping.ActivityID, params.RoleID)
	}
	uc.Log.Info("pushed entry",
		slog.String("alias", entry.Alias),
		slog.Float64("hours", entry.Duration),
		slog.String("date", date.Format("2006-01-02")),
	)
	return PushOutcome{RoleID: params.RoleID, Messages: res.Messages}, nil
}

func (uc *PushUseCase) push(ctx context.Context, params ports.PushParams) (ports.PushResult, error) {
	res, err := uc.Zebra.PushTimesheet(ctx, params)
	if err != nil {
		return ports.PushResult{}, err
	}
	if !res.OK && res.ErrorCode == errorCodeRoleInvalid {
		return ports.PushResult{}, apperr.With(apperr.ErrPushFailed,
			"Invalid role. Please check this role is assigned to you and update your alias accordingly.")
	}
	return res, nil
}

// promptRole asks which role to push entry in and offers to save the
// choice on the alias. A nil role means individual action.
func (uc *PushUseCase) promptRole(ctx context.Context, entry domain.TimeEntry, mapping domain.Mapping) (*domain.Role, error) {
	user, err := uc.Zebra.GetUserInfo(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := uc.latestActivityRoles(ctx)
	if err != nil {
		return nil, err
	}

	var defaultRole *domain.Role
	if id, ok := latest[mapping.ActivityID]; ok {
		if r, ok := user.Roles[id]; ok {
			defaultRole = &r
		}
	}

	uc.Prompter.Notify(fmt.Sprintf(
		"\nYou're trying to push the following entry to an activity which doesn't have any associated role:\n\n%s\n",
		describeEntry(entry)))

	role, err := uc.Prompter.SelectRole(user.SortedRoles(), uc.projectTeam(ctx, mapping), defaultRole)
	if err != nil {
		if errors.Is(err, ports.ErrCancelled) {
			return nil, apperr.With(apperr.ErrPushFailed, "Skipped")
		}
		return nil, err
	}

	if role == nil || mapping.NeverSaveRole() {
		return role, nil
	}

	choice, err := uc.Prompter.ConfirmSaveRole(entry.Alias, *role)
	if err != nil {
		if errors.Is(err, ports.ErrCancelled) {
			return nil, apperr.With(apperr.ErrPushFailed, "Skipped")
		}
		return nil, err
	}
	switch choice {
	case ports.SaveRoleYes:
		if err := uc.Aliases.Update(entry.Alias, mapping.WithRole(role.ID)); err != nil {
			return nil, err
		}
		uc.Prompter.Notify(fmt.Sprintf("Alias %s now points to the role %s", entry.Alias, role.FullName))
	case ports.SaveRoleNever:
		if err := uc.Aliases.Update(entry.Alias, mapping.WithRole(domain.NeverSaveRoleID)); err != nil {
			return nil, err
		}
	}
	return role, nil
}

// projectTeam returns the team of the project the mapping points to, or an
// empty string when the project is not in the local database.
func (uc *PushUseCase) projectTeam(ctx context.Context, mapping domain.Mapping) string {
	if uc.Projects == nil {
		return ""
	}
	id, err := strconv.ParseInt(mapping.ProjectID, 10, 64)
	if err != nil {
		return ""
	}
	p, err := uc.Projects.Get(ctx, uc.Backend, id)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			uc.Log.Warn("could not read project", slog.Int64("project", id), slog.String("error", err.Error()))
		}
		return ""
	}
	return p.Team
}

func (uc *PushUseCase) latestActivityRoles(ctx context.Context) (map[string]string, error) {
	if uc.latestLoaded {
		return uc.latestRoles, nil
	}
	fetched, err := uc.Zebra.GetLatestActivityRoles(ctx)
	if err != nil {
		return nil, err
	}
	if uc.latestRoles == nil {
		uc.latestRoles = make(map[string]string, len(fetched))
	}
	for activity, role := range fetched {
		if _, ok := uc.latestRoles[activity]; !ok {
			uc.latestRoles[activity] = role
		}
	}
	uc.latestLoaded = true
	return uc.latestRoles, nil
}

func (uc *PushUseCase) rememberRole(activityID, roleID string) {
	if uc.latestRoles == nil {
		uc.latestRoles = map[string]string{}
	}
	uc.latestRoles[activityID] = roleID
}

func describeEntry(e domain.TimeEntry) string {
	return fmt.Sprintf("%s %s %s", e.Alias, strconv.FormatFloat(e.Duration, 'f', -1, 64), e.Description)
}
