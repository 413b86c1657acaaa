package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"taxi-zebra/internal/domain"
)

func TestParseMapping(t *testing.T) {
	m, err := domain.ParseMapping("zebra", "1/2")
	require.NoError(t, err)
	require.Equal(t, domain.Mapping{Backend: "zebra", ProjectID: "1", ActivityID: "2"}, m)
	require.Equal(t, "1/2", m.String())
	require.Empty(t, m.PushRoleID())

	m, err = domain.ParseMapping("zebra", " 1/2/3 ")
	require.NoError(t, err)
	require.Equal(t, "3", m.PushRoleID())
	require.Equal(t, "1/2/3", m.String())

	for _, s := range []string{"", "1", "1//3", "1/2/3/4"} {
		_, err := domain.ParseMapping("zebra", s)
		require.Error(t, err, s)
	}
}

func TestMapping_neverSaveRole(t *testing.T) {
	m := domain.Mapping{ProjectID: "1", ActivityID: "2"}.WithRole(domain.NeverSaveRoleID)
	require.True(t, m.NeverSaveRole())
	require.Empty(t, m.PushRoleID())
	require.Equal(t, "1/2/0", m.String())
}

func TestProject_Matches(t *testing.T) {
	p := domain.Project{Name: "Internal", Activities: []domain.Activity{{ID: 1, Name: "Meeting"}}}
	require.True(t, p.Matches(""))
	require.True(t, p.Matches("intern"))
	require.True(t, p.Matches("MEET"))
	require.False(t, p.Matches("website"))
}

func TestUserInfo_SortedRoles(t *testing.T) {
	u := domain.UserInfo{Roles: map[string]domain.Role{
		"10": {ID: "10", FullName: "Developer"},
		"2":  {ID: "2", FullName: "Project Manager"},
		"7":  {ID: "7", FullName: "Designer"},
	}}
	var ids []string
	for _, r := range u.SortedRoles() {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []string{"2", "7", "10"}, ids)
}

func TestVacation_Left(t *testing.T) {
	v := domain.Vacation{TotalAvailable: 200, Planned: 16, Used: 40}
	require.InDelta(t, 144, v.Left(), 1e-9)
}
