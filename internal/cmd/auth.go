package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/output"
	"github.com/buildmaster/cli/internal/session"
)

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	var (
		usernameFlag string
		passwordFlag string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your BuildMaster account",
		Long: `Log in to your BuildMaster account. The session persists across
invocations until you log out or it expires.

Examples:
  # Prompt for credentials
  buildmaster login

  # Non-interactive (password from stdin is safer than --password)
  buildmaster login --username builder --password s3cret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), usernameFlag, passwordFlag)
		},
	}

	cmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&passwordFlag, "password", "p", "", "Account password (prompted when omitted)")

	return cmd
}

func runLogin(ctx context.Context, username, password string) error {
	a := getApp()

	var err error
	if username == "" {
		username, err = promptLine("Username: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	var user api.User
	err = output.RunWithSpinner(ctx, func() error {
		var err error
		user, err = a.Client.Login(ctx, api.LoginRequest{Username: username, Password: password})
		return err
	}, output.WithTitle("Logging in..."))
	if err != nil {
		return err
	}

	if err := a.Session.Login(session.FromUser(user)); err != nil {
		output.Warn("session will not survive this process", "error", err)
	}

	name := user.DisplayName
	if name == "" {
		name = user.Username
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("logged in as %s", output.StyleNoun.Render(name))))
	return nil
}

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.Session.Logout(); err != nil {
				return err
			}
			output.Println(output.FormatCheckmark("logged out"))
			return nil
		},
	}
}

// NewRegisterCmd creates the register command.
func NewRegisterCmd() *cobra.Command {
	var (
		usernameFlag string
		emailFlag    string
		codeFlag     string
		sendCodeFlag bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a BuildMaster account",
		Long: `Create a BuildMaster account and log in with it.

Examples:
  # Request an email verification code first
  buildmaster register --email b@example.com --send-code

  # Then register with the code
  buildmaster register --username builder --email b@example.com --code 123456`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd.Context(), usernameFlag, emailFlag, codeFlag, sendCodeFlag)
		},
	}

	cmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "Desired username")
	cmd.Flags().StringVarP(&emailFlag, "email", "e", "", "Email address")
	cmd.Flags().StringVar(&codeFlag, "code", "", "Email verification code")
	cmd.Flags().BoolVar(&sendCodeFlag, "send-code", false, "Only send a verification code to --email")

	return cmd
}

func runRegister(ctx context.Context, username, email, code string, sendCode bool) error {
	a := getApp()

	if sendCode {
		if err := a.Client.SendCode(ctx, email); err != nil {
			return err
		}
		output.Println(output.FormatCheckmark(fmt.Sprintf("verification code sent to %s", email)))
		return nil
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}

	var user api.User
	err = output.RunWithSpinner(ctx, func() error {
		var err error
		user, err = a.Client.Register(ctx, api.RegisterRequest{
			Username:        username,
			Email:           email,
			Password:        password,
			ConfirmPassword: confirm,
			Code:            code,
		})
		return err
	}, output.WithTitle("Registering..."))
	if err != nil {
		return err
	}

	if user.Token != "" {
		if err := a.Session.Login(session.FromUser(user)); err != nil {
			output.Warn("session will not survive this process", "error", err)
		}
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("account %s created", output.StyleNoun.Render(user.Username))))
	return nil
}

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd.Context(), outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")
	return cmd
}

func runWhoami(ctx context.Context, outputFmt string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/profile"); err != nil {
		return err
	}

	id, _ := a.Session.Current()

	format := resolvedFormat(outputFmt)
	if format != output.FormatTable {
		// The token never leaves the state directory.
		id.Token = ""
		rendered, err := renderStructured(format, id)
		if err != nil {
			return err
		}
		output.Println(rendered)
		return nil
	}

	tbl := output.NewTable("FIELD", "VALUE")
	tbl.Row("ID", id.UserID())
	tbl.Row("Username", id.Username)
	tbl.Row("Email", id.Email)
	tbl.Row("Display name", id.DisplayName)
	tbl.Row("Role", id.Role)
	output.Println(tbl.String())
	return nil
}

// promptLine reads one line from stdin.
func promptLine(prompt string) (string, error) {
	output.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing it. Falls back to a
// plain read when stdin is not a terminal.
func promptPassword(prompt string) (string, error) {
	output.Print(prompt)
	if !term.IsTerminal(int(syscall.Stdin)) {
		return promptLine("")
	}
	raw, err := term.ReadPassword(int(syscall.Stdin))
	output.Println("")
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}
