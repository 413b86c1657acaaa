package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
	"taxi-zebra/internal/ui"
)

var roles = []domain.Role{
	{ID: "3", ParentID: "1", FullName: "Role 2"},
	{ID: "2", ParentID: "1", FullName: "Role"},
	{ID: "4", ParentID: "9", FullName: "Another team"},
}

func newTTY(input string) (*ui.TTY, *bytes.Buffer) {
	var out bytes.Buffer
	return ui.NewTTY(strings.NewReader(input), &out, true), &out
}

func TestSelectRole_byPosition(t *testing.T) {
	tty, out := newTTY("1\n")

	role, err := tty.SelectRole(roles, "1", nil)
	require.NoError(t, err)
	require.Equal(t, "2", role.ID, "roles are listed by full name")
	require.Contains(t, out.String(), "In which role do you want to push this entry?")
	require.Contains(t, out.String(), "[0] Another team")
	require.Contains(t, out.String(), "[i] Individual action")
	require.Contains(t, out.String(), "-----")
	require.Contains(t, out.String(), "Select a role: ")
}

func TestSelectRole_defaultOnEmptyInput(t *testing.T) {
	tty, out := newTTY("\n")

	role, err := tty.SelectRole(roles, "", &domain.Role{ID: "3"})
	require.NoError(t, err)
	require.Equal(t, "3", role.ID)
	require.Contains(t, out.String(), "Select a role (leave empty for Role 2): ")
}

func TestSelectRole_invalidThenBracketed(t *testing.T) {
	tty, out := newTTY("42\n\n[2]\n")

	role, err := tty.SelectRole(roles, "", nil)
	require.NoError(t, err)
	require.Equal(t, "3", role.ID)
	require.Contains(t, out.String(), "`42` is not a a valid option. Please try again.")
}

func TestSelectRole_individualAndCancel(t *testing.T) {
	tty, _ := newTTY("i\n")
	role, err := tty.SelectRole(roles, "", nil)
	require.NoError(t, err)
	require.Nil(t, role)

	tty, _ = newTTY("c\n")
	_, err = tty.SelectRole(roles, "", nil)
	require.ErrorIs(t, err, ports.ErrCancelled)

	tty, _ = newTTY("")
	_, err = tty.SelectRole(roles, "", nil)
	require.ErrorIs(t, err, ports.ErrCancelled, "closed input cancels")
}

func TestConfirmSaveRole(t *testing.T) {
	cases := map[string]ports.SaveRoleChoice{
		"\n":        ports.SaveRoleYes,
		"y\n":       ports.SaveRoleYes,
		"n\n":       ports.SaveRoleNo,
		"x\nN\n":    ports.SaveRoleNever,
		"maybe\n\n": ports.SaveRoleYes,
	}
	for input, want := range cases {
		tty, out := newTTY(input)
		got, err := tty.ConfirmSaveRole("meeting", domain.Role{ID: "2", FullName: "Role"})
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
		require.Contains(t, out.String(), "You have selected the role Role")
		require.Contains(t, out.String(), "Make the meeting alias always use this role? ([y]es, [n]o, [N]ever)")
	}

	tty, _ := newTTY("")
	_, err := tty.ConfirmSaveRole("meeting", domain.Role{ID: "2"})
	require.ErrorIs(t, err, ports.ErrCancelled)
}
