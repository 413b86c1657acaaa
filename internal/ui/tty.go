// Package ui implements the interactive terminal prompts used while pushing
// entries.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/go-faster/errors"

	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

const (
	individualActionKey = "i"
	cancelKey           = "c"
)

// TTY implements ports.RolePrompter on a line oriented terminal.
type TTY struct {
	in  *bufio.Reader
	out io.Writer

	yellow     *color.Color
	boldYellow *color.Color
	red        *color.Color
	green      *color.Color
	bold       *color.Color
}

var _ ports.RolePrompter = (*TTY)(nil)

// NewTTY reads answers from in and writes prompts to out.
func NewTTY(in io.Reader, out io.Writer, noColor bool) *TTY {
	t := &TTY{
		in:         bufio.NewReader(in),
		out:        out,
		yellow:     color.New(color.FgYellow),
		boldYellow: color.New(color.FgYellow, color.Bold),
		red:        color.New(color.FgRed),
		green:      color.New(color.FgGreen),
		bold:       color.New(color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{t.yellow, t.boldYellow, t.red, t.green, t.bold} {
			c.DisableColor()
		}
	}
	return t
}

// Warning renders s the way warnings are shown.
func (t *TTY) Warning(s string) string { return t.yellow.Sprint(s) }

// Error renders s the way errors are shown.
func (t *TTY) Error(s string) string { return t.red.Sprint(s) }

// Success renders s the way confirmations are shown.
func (t *TTY) Success(s string) string { return t.green.Sprint(s) }

// Notify implements ports.RolePrompter.
func (t *TTY) Notify(msg string) {
	fmt.Fprintln(t.out, msg)
}

// readLine returns io.EOF when the input is closed.
func (t *TTY) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type option struct {
	key   string // empty for separators
	label string
	role  *domain.Role
	bold  bool
}

// SelectRole implements ports.RolePrompter. Roles are listed by full name;
// those belonging to projectTeam are highlighted.
func (t *TTY) SelectRole(roles []domain.Role, projectTeam string, defaultRole *domain.Role) (*domain.Role, error) {
	sorted := append([]domain.Role(nil), roles...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FullName < sorted[j].FullName })

	options := make([]option, 0, len(sorted)+3)
	for i := range sorted {
		r := sorted[i]
		options = append(options, option{
			key:   strconv.Itoa(i),
			label: r.FullName,
			role:  &r,
			bold:  r.ParentID != "" && r.ParentID == projectTeam,
		})
	}
	options = append(options,
		option{label: "-----"},
		option{key: individualActionKey, label: "Individual action"},
		option{key: cancelKey, label: "Cancel, skip this entry for now"},
	)

	var def *option
	if defaultRole != nil {
		for i := range options {
			if options[i].role != nil && options[i].role.ID == defaultRole.ID {
				def = &options[i]
				break
			}
		}
	}

	fmt.Fprintln(t.out, t.bold.Sprint("In which role do you want to push this entry?"))
	fmt.Fprintln(t.out)
	for _, o := range options {
		if o.key == "" {
			fmt.Fprintln(t.out, o.label)
			continue
		}
		key, label := t.yellow.Sprintf("[%s]", o.key), o.label
		if o.bold {
			key, label = t.boldYellow.Sprintf("[%s]", o.key), t.bold.Sprint(o.label)
		}
		fmt.Fprintln(t.out, key+" "+label)
	}
	fmt.Fprintln(t.out)

	prompt := "Select a role"
	if def != nil {
		prompt += fmt.Sprintf(" (leave empty for %s)", t.bold.Sprint(def.label))
	}

	for {
		fmt.Fprint(t.out, prompt+": ")
		line, err := t.readLine()
		if err != nil {
			fmt.Fprintln(t.out)
			return nil, ports.ErrCancelled
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			if def == nil {
				continue
			}
			answer = def.key
		}
		answer = strings.TrimSuffix(strings.TrimPrefix(answer, "["), "]")

		for _, o := range options {
			if o.key == "" || o.key != answer {
				continue
			}
			switch o.key {
			case cancelKey:
				fmt.Fprintln(t.out)
				return nil, ports.ErrCancelled
			case individualActionKey:
				return nil, nil
			default:
				return o.role, nil
			}
		}
		fmt.Fprintln(t.out, t.red.Sprintf("`%s` is not a a valid option. Please try again.", answer))
	}
}

// ConfirmSaveRole implements ports.RolePrompter.
func (t *TTY) ConfirmSaveRole(alias string, role domain.Role) (ports.SaveRoleChoice, error) {
	fmt.Fprintf(t.out, "You have selected the role %s\n", t.yellow.Sprint(role.FullName))
	prompt := fmt.Sprintf("Make the %s alias always use this role? ([y]es, [n]o, [N]ever) ", t.yellow.Sprint(alias))

	for {
		fmt.Fprint(t.out, prompt)
		line, err := t.readLine()
		if err != nil {
			fmt.Fprintln(t.out)
			return "", ports.ErrCancelled
		}
		switch answer := strings.TrimSpace(line); ports.SaveRoleChoice(answer) {
		case "":
			return ports.SaveRoleYes, nil
		case ports.SaveRoleYes, ports.SaveRoleNo, ports.SaveRoleNever:
			return ports.SaveRoleChoice(answer), nil
		default:
			fmt.Fprintln(t.out, t.red.Sprintf("Error: invalid choice: %s. (choose from y, n, N)", answer))
		}
	}
}
