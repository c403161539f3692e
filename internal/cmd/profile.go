package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/output"
	"github.com/buildmaster/cli/internal/session"
)

// NewProfileCmd creates the profile command group.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your account profile",
	}

	cmd.AddCommand(NewProfileUpdateCmd())
	cmd.AddCommand(NewProfileChangePasswordCmd())
	cmd.AddCommand(NewProfileAvatarCmd())

	return cmd
}

// NewProfileUpdateCmd creates the profile update command.
func NewProfileUpdateCmd() *cobra.Command {
	var (
		displayNameFlag string
		emailFlag       string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long: `Update profile fields. Only the flags you pass are changed.

Examples:
  buildmaster profile update --display-name "The Builder"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]string{}
			if cmd.Flags().Changed("display-name") {
				fields["displayName"] = displayNameFlag
			}
			if cmd.Flags().Changed("email") {
				fields["email"] = emailFlag
			}
			return runProfileUpdate(cmd.Context(), fields)
		},
	}

	cmd.Flags().StringVar(&displayNameFlag, "display-name", "", "Display name")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Email address")

	return cmd
}

func runProfileUpdate(ctx context.Context, fields map[string]string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/profile"); err != nil {
		return err
	}
	if len(fields) == 0 {
		return WrapValidation(fmt.Errorf("nothing to change"), "updating profile")
	}

	user, err := a.Client.UpdateUser(ctx, fields)
	if err != nil {
		return err
	}

	if err := a.Session.UpdateIdentity(session.FromUser(user)); err != nil {
		output.Warn("profile saved but local session not refreshed", "error", err)
	}
	output.Println(output.FormatCheckmark("profile updated"))
	return nil
}

// NewProfileChangePasswordCmd creates the change-password command.
func NewProfileChangePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChangePassword(cmd.Context())
		},
	}
}

func runChangePassword(ctx context.Context) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/profile/password"); err != nil {
		return err
	}

	oldPassword, err := promptPassword("Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := promptPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return WrapValidation(fmt.Errorf("passwords do not match"), "changing password")
	}

	if err := a.Client.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}
	output.Println(output.FormatCheckmark("password changed"))
	return nil
}

// NewProfileAvatarCmd creates the avatar upload command.
func NewProfileAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileAvatar(cmd.Context(), args[0])
		},
	}
}

func runProfileAvatar(ctx context.Context, path string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/profile/avatar"); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening avatar file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var url string
	err = output.RunWithSpinner(ctx, func() error {
		var err error
		url, err = a.Client.UploadAvatar(ctx, path, file)
		return err
	}, output.WithTitle("Uploading avatar..."))
	if err != nil {
		return err
	}

	user, err := a.Client.UpdateUser(ctx, map[string]string{"avatarUrl": url})
	if err != nil {
		return err
	}
	if err := a.Session.UpdateIdentity(session.FromUser(user)); err != nil {
		output.Warn("avatar saved but local session not refreshed", "error", err)
	}

	output.Println(output.FormatCheckmark("avatar updated"))
	return nil
}
