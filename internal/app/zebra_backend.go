package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"

	"taxi-zebra/internal/adapter/zebra"
	"taxi-zebra/internal/backend"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
	"taxi-zebra/internal/usecase"
)

// ZebraScheme is the URL scheme Zebra backends are configured with.
const ZebraScheme = "zebra"

func init() {
	backend.Register(ZebraScheme, newZebraBackend)
}

// ZebraBackend is the backend.Backend pushing entries to Zebra.
type ZebraBackend struct {
	name   string
	client *zebra.Client
	push   *usecase.PushUseCase
}

var _ backend.Backend = (*ZebraBackend)(nil)

func newZebraBackend(p backend.Params, c backend.Context) (backend.Backend, error) {
	hc := c.HTTPClient
	if hc == nil && c.Timeout > 0 {
		hc = &http.Client{Timeout: c.Timeout}
	}
	client, err := zebra.NewClient(zebra.Options{
		Backend:    p.Name,
		Username:   p.Username,
		Password:   p.Password,
		Hostname:   p.Hostname,
		Port:       p.Port,
		Path:       p.Path,
		Version:    c.Version,
		HTTPClient: hc,
		Log:        c.Log,
	})
	if err != nil {
		return nil, err
	}
	return &ZebraBackend{
		name:   p.Name,
		client: client,
		push: &usecase.PushUseCase{
			Log:      c.Log,
			Backend:  p.Name,
			Zebra:    client,
			Aliases:  c.Aliases,
			Projects: c.Projects,
			Prompter: c.Prompter,
		},
	}, nil
}

// Name is the name the backend is configured under.
func (b *ZebraBackend) Name() string { return b.name }

// Client exposes the underlying API client.
func (b *ZebraBackend) Client() *zebra.Client { return b.client }

// PushEntry implements backend.Backend. The returned string holds the
// messages Zebra attached to its response, one per line.
func (b *ZebraBackend) PushEntry(ctx context.Context, date time.Time, entry domain.TimeEntry) (string, error) {
	out, err := b.push.Push(ctx, date, entry)
	if err != nil {
		return "", err
	}
	return formatMessages(out.Messages), nil
}

// GetProjects implements backend.Backend.
func (b *ZebraBackend) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return b.client.GetProjects(ctx)
}

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func formatMessages(msgs []ports.ResponseMessage) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		switch m.Type {
		case "warning":
			lines = append(lines, warningColor.Sprint(m.Text))
		case "error":
			lines = append(lines, errorColor.Sprint(m.Text))
		default:
			lines = append(lines, m.Text)
		}
	}
	return strings.Join(lines, "\n")
}
