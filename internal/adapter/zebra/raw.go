package zebra

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/domain"
)

// value holds a scalar Zebra sends either as a JSON number or as a string.
// null and false both mean unset.
type value string

func (v *value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = value(s)
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		return errors.Errorf("expected a scalar, got %s", string(b))
	default:
		*v = value(b)
	}
	return nil
}

func (v value) String() string { return string(v) }

func (v value) Int64() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
}

// Float returns 0 for empty or unparsable values.
func (v value) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil {
		return 0
	}
	return f
}

// date returns nil for empty or unparsable values.
func (v value) date() *time.Time {
	d, err := time.Parse(dateLayout, string(v))
	if err != nil {
		return nil
	}
	return &d
}

type rawMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// rawResponse is the envelope shared by every Zebra API answer.
type rawResponse struct {
	Success   bool            `json:"success"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"errorCode"`
	Messages  []rawMessage    `json:"messages"`
	Data      json.RawMessage `json:"data"`
}

type rawActivity struct {
	ID    value  `json:"id"`
	Name  string `json:"name"`
	Rate  value  `json:"rate"`
	Alias value  `json:"alias"`
}

type rawProject struct {
	ID          value         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Budget      value         `json:"budget"`
	StartDate   value         `json:"start_date"`
	EndDate     value         `json:"end_date"`
	Team        value         `json:"team"`
	Activities  []rawActivity `json:"activities"`
}

func (r rawProject) toDomain(backend string) (domain.Project, error) {
	id, err := r.ID.Int64()
	if err != nil {
		return domain.Project{}, errors.Wrapf(err, "project id %q", r.ID)
	}
	p := domain.Project{
		ID:          id,
		Backend:     backend,
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.Budget.Float(),
		Status:      domain.ProjectStatusActive,
		StartDate:   r.StartDate.date(),
		EndDate:     r.EndDate.date(),
		Team:        r.Team.String(),
		Activities:  make([]domain.Activity, 0, len(r.Activities)),
		Aliases:     map[string]int64{},
	}
	for _, ra := range r.Activities {
		aid, err := ra.ID.Int64()
		if err != nil {
			return domain.Project{}, errors.Wrapf(err, "activity id %q of project %d", ra.ID, id)
		}
		p.Activities = append(p.Activities, domain.Activity{
			ID:    aid,
			Name:  ra.Name,
			Rate:  ra.Rate.Float(),
			Alias: ra.Alias.String(),
		})
		if ra.Alias != "" {
			p.Aliases[ra.Alias.String()] = aid
		}
	}
	return p, nil
}

type rawRole struct {
	ID       value  `json:"id"`
	ParentID value  `json:"parent_id"`
	FullName string `json:"full_name"`
}

// rawRoles is the roles field of a user. PHP encodes an empty map as [], so
// a list is accepted too and keyed by position.
type rawRoles map[string]json.RawMessage

func (r *rawRoles) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		m := map[string]json.RawMessage{}
		if err := json.Unmarshal(b, &m); err != nil {
			return err
		}
		*r = m
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	m := make(map[string]json.RawMessage, len(list))
	for i, raw := range list {
		m[strconv.Itoa(i)] = raw
	}
	*r = m
	return nil
}

type rawUser struct {
	Roles    rawRoles `json:"roles"`
	Vacation struct {
		TotalAvailable value `json:"total_available"`
		Planned        value `json:"planned"`
		Used           value `json:"used"`
	} `json:"vacation"`
	Hours struct {
		Hours struct {
			Balance value `json:"balance"`
		} `json:"hours"`
	} `json:"hours"`
}

// toDomain accepts roles as objects or, as older Zebra versions send them,
// as plain names keyed by id.
func (r rawUser) toDomain() (domain.UserInfo, error) {
	u := domain.UserInfo{
		Roles: make(map[string]domain.Role, len(r.Roles)),
		Vacation: domain.Vacation{
			TotalAvailable: r.Vacation.TotalAvailable.Float(),
			Planned:        r.Vacation.Planned.Float(),
			Used:           r.Vacation.Used.Float(),
		},
		HoursBalance: r.Hours.Hours.Balance.Float(),
	}
	for key, raw := range r.Roles {
		raw = bytes.TrimSpace(raw)
		role := domain.Role{ID: key}
		if len(raw) > 0 && raw[0] == '{' {
			var rr rawRole
			if err := json.Unmarshal(raw, &rr); err != nil {
				return domain.UserInfo{}, errors.Wrapf(err, "role %s", key)
			}
			if rr.ID != "" {
				role.ID = rr.ID.String()
			}
			role.ParentID = rr.ParentID.String()
			role.FullName = rr.FullName
		} else if err := json.Unmarshal(raw, &role.FullName); err != nil {
			return domain.UserInfo{}, errors.Wrapf(err, "role %s", key)
		}
		u.Roles[role.ID] = role
	}
	return u, nil
}

type rawTimesheet struct {
	ID          value  `json:"id"`
	Date        value  `json:"date"`
	Time        value  `json:"time"`
	Description string `json:"description"`
	ProjectID   value  `json:"project_id"`
	ActivityID  value  `json:"activity_id"`
}

func (r rawTimesheet) toDomain() domain.Timesheet {
	t := domain.Timesheet{
		Time:        r.Time.Float(),
		Description: r.Description,
	}
	t.ID, _ = r.ID.Int64()
	t.ProjectID, _ = r.ProjectID.Int64()
	t.ActivityID, _ = r.ActivityID.Int64()
	if d := r.Date.date(); d != nil {
		t.Date = *d
	}
	return t
}
