package zebra

import (
	"net/url"
	"strconv"

	"taxi-zebra/internal/ports"
)

// formatBool renders booleans the way Zebra expects them.
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// pushForm encodes p as the form Zebra expects. Empty optional fields are
// left out.
func pushForm(p ports.PushParams) url.Values {
	v := url.Values{}
	v.Set("time", strconv.FormatFloat(p.Time, 'f', -1, 64))
	v.Set("project_id", p.ProjectID)
	v.Set("activity_id", p.ActivityID)
	v.Set("date", p.Date.Format(dateLayout))
	v.Set("description", p.Description)
	if p.RoleID != "" {
		v.Set("role_id", p.RoleID)
	}
	if p.IndividualAction != nil {
		v.Set("individual_action", formatBool(*p.IndividualAction))
	}
	return v
}
