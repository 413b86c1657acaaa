package ports

import (
	"context"
	"time"

	"taxi-zebra/internal/domain"
)

// PushParams are the fields of a timesheet push. Empty RoleID is not sent;
// IndividualAction is only sent when set.
type PushParams struct {
	Date             time.Time
	Time             float64
	ProjectID        string
	ActivityID       string
	RoleID           string
	Description      string
	IndividualAction *bool
}

// ResponseMessage is a user-facing message attached to a Zebra response.
type ResponseMessage struct {
	Type string // warning, error, ...
	Text string
}

// PushResult is Zebra's answer to a push.
type PushResult struct {
	OK        bool // HTTP status was 2xx
	Success   bool
	Error     string
	ErrorCode string
	Messages  []ResponseMessage
}

// ZebraClient defines the calls the backend makes against Zebra.
//
//go:generate mockgen -package mockports -source=ports.go -destination=mock/mockports.go
type ZebraClient interface {
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetUserInfo(ctx context.Context) (domain.UserInfo, error)
	GetLatestActivityRoles(ctx context.Context) (map[string]string, error)
	GetTimesheets(ctx context.Context, start, end time.Time) ([]domain.Timesheet, error)
	PushTimesheet(ctx context.Context, params PushParams) (PushResult, error)
}

// ProjectStore is the local projects database.
type ProjectStore interface {
	Save(ctx context.Context, backend string, projects []domain.Project) error
	Get(ctx context.Context, backend string, id int64) (*domain.Project, error)
	List(ctx context.Context, backend string) ([]domain.Project, error)
}

// AliasStore resolves aliases and persists mapping changes.
type AliasStore interface {
	Get(alias string) (domain.Mapping, bool)
	Update(alias string, mapping domain.Mapping) error
}

// SaveRoleChoice is the answer to "always use this role?".
type SaveRoleChoice string

const (
	SaveRoleYes   SaveRoleChoice = "y"
	SaveRoleNo    SaveRoleChoice = "n"
	SaveRoleNever SaveRoleChoice = "N"
)

// RolePrompter asks the user which role to push an entry in.
type RolePrompter interface {
	// SelectRole returns the chosen role, nil for individual action, or
	// ErrCancelled.
	SelectRole(roles []domain.Role, projectTeam string, defaultRole *domain.Role) (*domain.Role, error)
	// ConfirmSaveRole asks whether alias should always use role.
	ConfirmSaveRole(alias string, role domain.Role) (SaveRoleChoice, error)
	// Notify shows an informational line.
	Notify(msg string)
}

// ProjectSource is anything projects can be fetched from: a Zebra client or
// a configured backend.
type ProjectSource interface {
	GetProjects(ctx context.Context) ([]domain.Project, error)
}
