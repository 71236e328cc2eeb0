// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
)

const usage = `usage: shop-admin <command> [flags]

commands:
  register   -name -email -password [-gender]
  login      -email -password
  seed-admin -secret
  settings   get [-token | -email -password]
  settings   put [-token | -email -password] <file|->
  version`

var _ Client = (*App)(nil)

// App runs one admin command per invocation.
type App struct {
	client    adapter.AdminClient
	buildInfo models.AppBuildInfo
	token     string

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// AppOption customises an App at construction time.
type AppOption func(*App)

// WithToken sets the bearer token used when no -token flag is given.
func WithToken(token string) AppOption {
	return func(a *App) {
		a.token = token
	}
}

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) AppOption {
	return func(a *App) {
		if in != nil {
			a.in = in
		}
		if out != nil {
			a.out = out
		}
	}
}

func NewApp(client adapter.AdminClient, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...AppOption) (*App, error) {
	if client == nil {
		return nil, errors.New("admin client is required")
	}

	a := &App{
		client:    client,
		buildInfo: buildInfo,
		in:        os.Stdin,
		out:       os.Stdout,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "seed-admin":
		return a.seedAdmin(ctx, rest)
	case "settings":
		return a.settings(ctx, rest)
	case "version":
		return a.version(ctx)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	var request models.RegisterRequest
	fs.StringVar(&request.Name, "name", "", "display name")
	fs.StringVar(&request.Email, "email", "", "account email")
	fs.StringVar(&request.Password, "password", "", "account password")
	gender := fs.String("gender", "", "male or female")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	request.Gender = models.Gender(*gender)

	resp, err := a.client.Register(ctx, request)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return a.printJSON(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	var request models.LoginRequest
	fs.StringVar(&request.Email, "email", "", "account email")
	fs.StringVar(&request.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	resp, err := a.client.Login(ctx, request)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return a.printJSON(resp)
}

func (a *App) seedAdmin(ctx context.Context, args []string) error {
	fs := newFlagSet("seed-admin")
	secret := fs.String("secret", os.Getenv("ADMIN_SETUP_SECRET"), "admin setup secret")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	resp, err := a.client.SeedAdmin(ctx, *secret)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return a.printJSON(resp)
}

func (a *App) settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: settings needs get or put", ErrUsage)
	}

	action := args[0]
	fs := newFlagSet("settings " + action)
	token := fs.String("token", a.token, "bearer token of an admin")
	email := fs.String("email", "", "admin email, used when no token is given")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if err := a.authenticate(ctx, *token, *email, *password); err != nil {
		return err
	}

	switch action {
	case "get":
		tree, err := a.client.GetSettings(ctx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		return a.printJSON(tree)
	case "put":
		if fs.NArg() != 1 {
			return fmt.Errorf("%w: settings put needs one file argument", ErrUsage)
		}
		tree, err := a.readSettings(fs.Arg(0))
		if err != nil {
			return err
		}
		if err = a.client.PutSettings(ctx, tree); err != nil {
			return fmt.Errorf("put settings: %w", err)
		}
		fmt.Fprintln(a.out, "Settings updated successfully")
		return nil
	default:
		return fmt.Errorf("%w: unknown settings action %q", ErrUsage, action)
	}
}

func (a *App) version(ctx context.Context) error {
	fmt.Fprintln(a.out, a.buildInfo.String())

	serverVersion, err := a.client.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version is unavailable")
		serverVersion = "unavailable"
	}
	fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
	return nil
}

// authenticate prefers an explicit token and falls back to logging in.
func (a *App) authenticate(ctx context.Context, token, email, password string) error {
	switch {
	case token != "":
		a.client.SetToken(token)
		return nil
	case email != "":
		if _, err := a.client.Login(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		return nil
	default:
		return ErrNoCredentials
	}
}

// readSettings decodes a settings tree from path, or from stdin for "-".
func (a *App) readSettings(path string) (models.SettingsTree, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var tree models.SettingsTree
	if err = json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode settings %s: %w", path, err)
	}
	return tree, nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
