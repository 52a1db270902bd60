package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/adapter"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/models"
)

// Usage lists the supported commands.
const Usage = `commands:
  signup -username NAME -email EMAIL -password PASS
  signin -email EMAIL -password PASS
  signout
  me
  health
  upload FILE
  list
  delete ID`

type App struct {
	adapter adapter.ServerAdapter
	tokens  TokenStore
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, tokens: tokens, out: out, logger: logger}
}

// Run restores the saved token and dispatches args[0] to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		a.adapter.SetToken(token)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "signup":
		return a.signup(ctx, rest)
	case "signin":
		return a.signin(ctx, rest)
	case "signout":
		return a.signout()
	case "me":
		return a.me(ctx)
	case "health":
		return a.health(ctx)
	case "upload":
		return a.upload(ctx, rest)
	case "list":
		return a.list(ctx)
	case "delete":
		return a.delete(ctx, rest)
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, command)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	var req models.SignupRequest
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&req.Username, "username", "", "account name")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Signup(ctx, req)
	if err != nil {
		return err
	}
	if err = a.saveToken(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s <%s>\n", user.Username, user.Email)
	return nil
}

func (a *App) signin(ctx context.Context, args []string) error {
	var req models.SigninRequest
	fs := flag.NewFlagSet("signin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Signin(ctx, req)
	if err != nil {
		return err
	}
	if err = a.saveToken(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "signed in as %s <%s>\n", user.Username, user.Email)
	return nil
}

func (a *App) signout() error {
	a.adapter.SetToken("")
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) me(ctx context.Context) error {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:       %s\nusername: %s\nemail:    %s\n", user.ID, user.Username, user.Email)
	return nil
}

func (a *App) health(ctx context.Context) error {
	status, err := a.adapter.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s", status.Status, status.Message)
	if status.Version != "" {
		fmt.Fprintf(a.out, " (%s)", status.Version)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: upload FILE", ErrMissingArgs)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	filename := filepath.Base(args[0])
	resume, err := a.adapter.UploadResume(ctx, models.UploadFile{
		Filename:    filename,
		ContentType: objectstore.ContentTypeFor(filename),
		Data:        data,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "uploaded %s\nid:  %s\nurl: %s\n", resume.Filename, resume.ID, resume.URL)
	return nil
}

func (a *App) list(ctx context.Context) error {
	resumes, err := a.adapter.ListResumes(ctx)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		fmt.Fprintln(a.out, "no resumes")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILENAME\tSIZE\tUPLOADED\tURL")
	for _, r := range resumes {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.ID, r.Filename, r.Size, r.UploadedAt.Local().Format(time.DateTime), r.URL)
	}
	return tw.Flush()
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("%w: delete ID", ErrMissingArgs)
	}

	if err := a.adapter.DeleteResume(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", args[0])
	return nil
}

func (a *App) saveToken() error {
	token := a.adapter.Token()
	if token == "" {
		return nil
	}
	return a.tokens.Save(token)
}
