// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-staff-api/internal/adapter"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/models"
)

const usage = `usage: go-staff-client [flags] <command> [command flags]

commands:
  employees list [-page N] [-job ID|IRI]... [-order field=asc|desc]...
  employees get <id>
  employees job <id>
  employees create -name NAME -hired DATE -experience N -salary S -job IRI -owner IRI
  employees update <id> [-name NAME] [-hired DATE] [-experience N] [-salary S] [-job IRI] [-owner IRI]
  jobs list [-page N]
  jobs create -title TITLE
  users list [-page N] [-username U]... [-email E]...
  users create -username U -email E -password P [-enabled]
  users update <id> [-username U] [-email E] [-password P] [-enabled=BOOL]
  users delete <id>
  login -username U -password P
  version

write commands read the bearer token from -token or ADAPTER_TOKEN.
`

type command func(ctx context.Context, args []string) error

type App struct {
	api    adapter.StaffAPI
	out    io.Writer
	token  string
	logger *logger.Logger

	commands map[string]command
}

// NewApp returns the client. token is used for write commands unless a
// command overrides it with -token.
func NewApp(api adapter.StaffAPI, out io.Writer, token string, logger *logger.Logger) *App {
	app := &App{api: api, out: out, token: token, logger: logger}
	app.commands = map[string]command{
		"employees list":   app.listEmployees,
		"employees get":    app.getEmployee,
		"employees job":    app.getEmployeeJob,
		"employees create": app.createEmployee,
		"employees update": app.updateEmployee,
		"jobs list":        app.listEmployeeJobs,
		"jobs create":      app.createEmployeeJob,
		"users list":       app.listUsers,
		"users create":     app.createUser,
		"users update":     app.updateUser,
		"users delete":     app.deleteUser,
		"login":            app.login,
		"version":          app.version,
	}
	return app
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: no command given", ErrInvalidArgs)
	}

	name, rest := args[0], args[1:]
	if _, ok := a.commands[name]; !ok && len(args) > 1 {
		name, rest = args[0]+" "+args[1], args[2:]
	}

	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, strings.Join(args, " "))
	}

	a.logger.Debug().Str("command", name).Strs("args", rest).Msg("running command")

	return cmd(ctx, rest)
}

// ── Employees ───────────────────────────────────────────────────────────────

func (a *App) listEmployees(ctx context.Context, args []string) error {
	fs := newFlagSet("employees list")
	page := fs.Int("page", 1, "page number")
	var jobs, order listFlag
	fs.Var(&jobs, "job", "job id or IRI (repeatable)")
	fs.Var(&order, "order", "field=asc|desc (repeatable, one term per field)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	query := url.Values{"page": {strconv.Itoa(*page)}}
	for _, job := range jobs {
		query.Add("job[]", job)
	}
	// url.Values encodes keys sorted, so terms are applied by field name and
	// a repeated field keeps its last direction.
	for _, term := range order {
		field, direction, ok := strings.Cut(term, "=")
		if !ok {
			return fmt.Errorf("%w: order %q is not field=direction", ErrInvalidArgs, term)
		}
		query.Set("order["+field+"]", direction)
	}

	collection, err := a.api.ListEmployees(ctx, query)
	if err != nil {
		return err
	}

	return a.printCollection(collection, "@id", "name", "hired", "experience", "salary", "job", "owner")
}

func (a *App) getEmployee(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	doc, err := a.api.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

func (a *App) getEmployeeJob(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	doc, err := a.api.GetEmployeeJob(ctx, id)
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

func (a *App) createEmployee(ctx context.Context, args []string) error {
	fs := newFlagSet("employees create")
	name := fs.String("name", "", "employee name")
	hired := fs.String("hired", "", "hire date, e.g. 2024-03-01")
	experience := fs.Int("experience", 0, "years of experience")
	salary := fs.String("salary", "", "salary, e.g. 1200.50")
	job := fs.String("job", "", "job IRI, e.g. /api/employee_jobs/1")
	owner := fs.String("owner", "", "owner IRI, e.g. /api/users/1")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	attributes := adapter.Document{
		"name":       *name,
		"hired":      *hired,
		"experience": *experience,
		"salary":     *salary,
		"job":        *job,
		"owner":      *owner,
	}

	a.useToken(*token)
	doc, err := a.api.CreateEmployee(ctx, attributes)
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

// updateEmployee sends only the attributes given on the command line; the
// server keeps the others.
func (a *App) updateEmployee(ctx context.Context, args []string) error {
	fs := newFlagSet("employees update")
	fs.String("name", "", "employee name")
	fs.String("hired", "", "hire date, e.g. 2024-03-01")
	fs.Int("experience", 0, "years of experience")
	fs.String("salary", "", "salary, e.g. 1200.50")
	fs.String("job", "", "job IRI, e.g. /api/employee_jobs/1")
	fs.String("owner", "", "owner IRI, e.g. /api/users/1")
	token := fs.String("token", "", "bearer token")

	id, err := parseIDAndFlags(fs, args)
	if err != nil {
		return err
	}

	attributes := setFlags(fs, "token")
	if len(attributes) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrInvalidArgs)
	}

	a.useToken(*token)
	doc, err := a.api.UpdateEmployee(ctx, id, attributes)
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

// ── Jobs ────────────────────────────────────────────────────────────────────

func (a *App) listEmployeeJobs(ctx context.Context, args []string) error {
	fs := newFlagSet("jobs list")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	collection, err := a.api.ListEmployeeJobs(ctx, url.Values{"page": {strconv.Itoa(*page)}})
	if err != nil {
		return err
	}

	return a.printCollection(collection, "@id", "title")
}

func (a *App) createEmployeeJob(ctx context.Context, args []string) error {
	fs := newFlagSet("jobs create")
	title := fs.String("title", "", "job title")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	a.useToken(*token)
	doc, err := a.api.CreateEmployeeJob(ctx, adapter.Document{"title": *title})
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

// ── Users ───────────────────────────────────────────────────────────────────

func (a *App) listUsers(ctx context.Context, args []string) error {
	fs := newFlagSet("users list")
	page := fs.Int("page", 1, "page number")
	var usernames, emails listFlag
	fs.Var(&usernames, "username", "exact username (repeatable)")
	fs.Var(&emails, "email", "exact email (repeatable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	query := url.Values{"page": {strconv.Itoa(*page)}}
	for _, username := range usernames {
		query.Add("username[]", username)
	}
	for _, email := range emails {
		query.Add("email[]", email)
	}

	collection, err := a.api.ListUsers(ctx, query)
	if err != nil {
		return err
	}

	return a.printCollection(collection, "@id", "username", "email", "enabled", "last_login")
}

func (a *App) createUser(ctx context.Context, args []string) error {
	fs := newFlagSet("users create")
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	enabled := fs.Bool("enabled", true, "account enabled")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	doc, err := a.api.CreateUser(ctx, adapter.Document{
		"username": *username,
		"email":    *email,
		"password": *password,
		"enabled":  *enabled,
	})
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

// updateUser sends the given attributes as a merge patch.
func (a *App) updateUser(ctx context.Context, args []string) error {
	fs := newFlagSet("users update")
	fs.String("username", "", "username")
	fs.String("email", "", "email")
	fs.String("password", "", "password")
	fs.Bool("enabled", true, "account enabled")
	token := fs.String("token", "", "bearer token")

	id, err := parseIDAndFlags(fs, args)
	if err != nil {
		return err
	}

	attributes := setFlags(fs, "token")
	if len(attributes) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrInvalidArgs)
	}

	a.useToken(*token)
	doc, err := a.api.PatchUser(ctx, id, attributes)
	if err != nil {
		return err
	}
	return a.printDocument(doc)
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	fs := newFlagSet("users delete")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	a.useToken(*token)
	if err = a.api.DeleteUser(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted /api/users/%d\n", id)
	return nil
}

// ── Auth and info ───────────────────────────────────────────────────────────

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	token, err := a.api.Login(ctx, models.Credentials{Username: *username, Password: *password})
	if err != nil {
		return err
	}

	a.logger.Info().Int64("user_id", token.UserID).Msg("logged in")
	fmt.Fprintln(a.out, token.SignedString)
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "version: %s\ndate: %s\ncommit: %s\n", version.Version, version.Date, version.Commit)
	return nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func (a *App) useToken(override string) {
	token := a.token
	if override != "" {
		token = override
	}
	a.api.SetToken(token)
}

func (a *App) printCollection(collection adapter.Collection, columns ...string) error {
	headers := make([]string, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, strings.ToUpper(column))
	}

	rows := make([][]string, 0, len(collection.Members))
	for _, member := range collection.Members {
		values := make([]string, 0, len(columns))
		for _, column := range columns {
			values = append(values, member.String(column))
		}
		rows = append(rows, values)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(int, int) lipgloss.Style { return cell }).
		Headers(headers...).
		Rows(rows...)

	if _, err := fmt.Fprintln(a.out, t.Render()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d of %d items", len(collection.Members), collection.TotalItems)
	if collection.View.Next != "" {
		fmt.Fprintf(a.out, ", next: %s", collection.View.Next)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) printDocument(doc adapter.Document) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(out))
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", ErrInvalidArgs)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q is not an id", ErrInvalidArgs, args[0])
	}
	return id, nil
}

// parseIDAndFlags accepts the id before or after the flags.
func parseIDAndFlags(fs *flag.FlagSet, args []string) (int64, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, err := parseID(args[:1])
		if err != nil {
			return 0, err
		}
		if err = fs.Parse(args[1:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		if fs.NArg() > 0 {
			return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidArgs, fs.Arg(0))
		}
		return id, nil
	}

	if err := fs.Parse(args); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return parseID(fs.Args())
}

// setFlags returns the flags given on the command line as document
// attributes, typed as the flag's value.
func setFlags(fs *flag.FlagSet, skip ...string) adapter.Document {
	attributes := adapter.Document{}
	fs.Visit(func(f *flag.Flag) {
		if slices.Contains(skip, f.Name) {
			return
		}
		attributes[f.Name] = f.Value.(flag.Getter).Get()
	})
	return attributes
}

// listFlag collects the values of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}
