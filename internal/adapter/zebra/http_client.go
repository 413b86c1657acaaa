package zebra

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

const (
	apiPrefix  = "/api/v2"
	dateLayout = "2006-01-02"
	// maxBody caps how much of a response is read.
	maxBody = 8 << 20
)

// Options configures a Client.
type Options struct {
	// Backend is the name the backend is configured under; projects are
	// tagged with it.
	Backend  string
	Username string // user name, or API token when Password is empty
	Password string
	Hostname string
	Port     int    // default 443
	Path     string // base path of the Zebra installation
	Version  string // reported in the User-Agent

	HTTPClient *http.Client
	Log        *slog.Logger
}

// Client implements ports.ZebraClient against the Zebra API v2.
// It is not safe for concurrent use.
type Client struct {
	opts          Options
	http          *http.Client
	log           *slog.Logger
	authenticated bool
	userInfo      *domain.UserInfo
}

var _ ports.ZebraClient = (*Client)(nil)

// NewClient builds a Client. A cookie jar is attached to the HTTP client so
// the login session survives between calls.
func NewClient(opts Options) (*Client, error) {
	if opts.Hostname == "" {
		return nil, apperr.With(apperr.ErrInvalidConfig, "zebra: hostname is required")
	}
	if opts.Username == "" {
		return nil, apperr.With(apperr.ErrInvalidConfig, "zebra: username or token is required")
	}
	if opts.Port == 0 {
		opts.Port = 443
	}
	opts.Path = normalizePath(opts.Path)
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	var hc http.Client
	if opts.HTTPClient != nil {
		hc = *opts.HTTPClient
	} else {
		hc.Timeout = 30 * time.Second
	}
	if hc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "create cookie jar")
		}
		hc.Jar = jar
	}
	return &Client{opts: opts, http: &hc, log: opts.Log}, nil
}

func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// UsesToken reports whether the client authenticates with an API token.
func (c *Client) UsesToken() bool { return c.opts.Password == "" }

// fullURL joins endpoint to the installation base URL.
func (c *Client) fullURL(endpoint string) string {
	return "https://" + c.opts.Hostname + ":" + strconv.Itoa(c.opts.Port) +
		c.opts.Path + strings.TrimPrefix(endpoint, "/")
}

// apiURL builds an API v2 URL, adding the token parameter when the client
// authenticates with a token.
func (c *Client) apiURL(endpoint string, query url.Values) (string, error) {
	u, err := url.Parse(c.fullURL(apiPrefix + endpoint))
	if err != nil {
		return "", errors.Wrap(err, "parse url")
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if c.UsesToken() {
		q.Set("token", c.opts.Username)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, form url.Values) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())
	return req, nil
}

func (c *Client) userAgent() string {
	if c.opts.Version == "" {
		return "Taxi-Zebra"
	}
	return "Taxi-Zebra " + c.opts.Version
}

// do sends req and returns the status code and body.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "read response body")
	}
	c.log.Debug("zebra request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("dur", time.Since(start)),
	)
	return resp.StatusCode, b, nil
}

// Authenticate logs in with the configured password. Token clients and
// clients that already logged in return immediately.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.authenticated || c.UsesToken() {
		return nil
	}
	form := url.Values{}
	form.Set("username", c.opts.Username)
	form.Set("password", c.opts.Password)
	loginURL := c.fullURL("/login/user/" + url.PathEscape(c.opts.Username) + ".json")

	req, err := c.newRequest(ctx, http.MethodPost, loginURL, form)
	if err != nil {
		return err
	}
	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 || !json.Valid(body) {
		return apperr.With(apperr.ErrUnauthorized, "Login failed, please check your credentials")
	}
	c.authenticated = true
	c.log.Debug("zebra login succeeded", slog.String("user", c.opts.Username))
	return nil
}

// statusError maps a non-2xx status to a user-facing error.
func statusError(status int, body []byte) error {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperr.With(apperr.ErrUnauthorized, "authentication failed, please check your credentials")
	case status == http.StatusNotFound:
		return apperr.With(apperr.ErrNotFound, "resource not found on the Zebra server")
	case status >= 500:
		return apperr.With(apperr.ErrServer, "zebra server error (status %d)", status)
	default:
		return apperr.With(apperr.ErrUnexpectedResponse, "zebra: unexpected status %d: %s", status, snippet)
	}
}

// getData fetches an API endpoint and decodes its data field into out.
func (c *Client) getData(ctx context.Context, endpoint string, query url.Values, out any) error {
	if err := c.Authenticate(ctx); err != nil {
		return err
	}
	u, err := c.apiURL(endpoint, query)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return statusError(status, body)
	}
	var env rawResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return apperr.Wrap(apperr.ErrUnexpectedResponse, err,
			"unexpected response from the server, check your credentials")
	}
	if len(env.Data) == 0 {
		return apperr.With(apperr.ErrUnexpectedResponse, "zebra: response to %s has no data", endpoint)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperr.Wrap(apperr.ErrUnexpectedResponse, err, "zebra: could not decode %s", endpoint)
	}
	return nil
}

// GetProjects lists the projects and activities visible to the user.
// GET /api/v2/projects/
func (c *Client) GetProjects(ctx context.Context) ([]domain.Project, error) {
	var raw []rawProject
	if err := c.getData(ctx, "/projects/", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(raw))
	for _, r := range raw {
		p, err := r.toDomain(c.opts.Backend)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrUnexpectedResponse, err, "zebra: invalid project")
		}
		out = append(out, p)
	}
	return out, nil
}

// GetUserInfo returns the authenticated user. The answer is cached for the
// lifetime of the client.
// GET /api/v2/users/me
func (c *Client) GetUserInfo(ctx context.Context) (domain.UserInfo, error) {
	if c.userInfo != nil {
		return *c.userInfo, nil
	}
	var raw rawUser
	if err := c.getData(ctx, "/users/me", nil, &raw); err != nil {
		return domain.UserInfo{}, err
	}
	u, err := raw.toDomain()
	if err != nil {
		return domain.UserInfo{}, apperr.Wrap(apperr.ErrUnexpectedResponse, err, "zebra: invalid user info")
	}
	c.userInfo = &u
	return u, nil
}

// GetLatestActivityRoles returns, by activity id, the role last used by the
// user on each activity.
// GET /api/v2/latestActivityRoles
func (c *Client) GetLatestActivityRoles(ctx context.Context) (map[string]string, error) {
	var raw map[string]value
	if err := c.getData(ctx, "/latestActivityRoles", nil, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for activity, role := range raw {
		out[activity] = role.String()
	}
	return out, nil
}

// GetTimesheets lists the user's timesheets between start and end included.
// A zero end means today.
// GET /api/v2/timesheets?start_date=...&end_date=...
func (c *Client) GetTimesheets(ctx context.Context, start, end time.Time) ([]domain.Timesheet, error) {
	if end.IsZero() {
		end = time.Now()
	}
	q := url.Values{}
	q.Set("start_date", start.Format(dateLayout))
	q.Set("end_date", end.Format(dateLayout))

	var raw struct {
		List []rawTimesheet `json:"list"`
	}
	if err := c.getData(ctx, "/timesheets", q, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.Timesheet, 0, len(raw.List))
	for _, r := range raw.List {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// PushTimesheet creates a timesheet.
// POST /api/v2/timesheets/
func (c *Client) PushTimesheet(ctx context.Context, params ports.PushParams) (ports.PushResult, error) {
	if err := c.Authenticate(ctx); err != nil {
		return ports.PushResult{}, err
	}
	u, err := c.apiURL("/timesheets/", nil)
	if err != nil {
		return ports.PushResult{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, u, pushForm(params))
	if err != nil {
		return ports.PushResult{}, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return ports.PushResult{}, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return ports.PushResult{}, statusError(status, body)
	}
	var env rawResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return ports.PushResult{}, apperr.Wrap(apperr.ErrPushFailed, err,
			"Got a non-JSON response when trying to push timesheet")
	}
	res := ports.PushResult{
		OK:        status >= 200 && status < 300,
		Success:   env.Success,
		Error:     env.Error,
		ErrorCode: env.ErrorCode,
		Messages:  make([]ports.ResponseMessage, 0, len(env.Messages)),
	}
	for _, m := range env.Messages {
		res.Messages = append(res.Messages, ports.ResponseMessage{Type: m.Type, Text: m.Text})
	}
	return res, nil
}
