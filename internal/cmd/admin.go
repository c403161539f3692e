package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/output"
)

// NewAdminCmd creates the admin command group.
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations",
	}

	cmd.AddCommand(NewAdminStatsCmd())
	cmd.AddCommand(NewAdminUsersCmd())

	return cmd
}

// NewAdminStatsCmd creates the admin stats command.
func NewAdminStatsCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminStats(cmd.Context(), outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")
	return cmd
}

func runAdminStats(ctx context.Context, outputFmt string) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin"); err != nil {
		return err
	}

	stats, err := a.Client.GetDashboardStats(ctx)
	if err != nil {
		return err
	}

	format := resolvedFormat(outputFmt)
	if format != output.FormatTable {
		rendered, err := renderStructured(format, stats)
		if err != nil {
			return err
		}
		output.Println(rendered)
		return nil
	}

	tbl := output.NewTable("METRIC", "VALUE")
	tbl.Row("Components", strconv.Itoa(stats.TotalComponents))
	tbl.Row("Users", strconv.Itoa(stats.TotalUsers))
	tbl.Row("Saved builds", strconv.Itoa(stats.TotalBuilds))
	for slot, count := range stats.ComponentsByType {
		tbl.Row("components: "+slot, strconv.Itoa(count))
	}
	output.Println(tbl.String())
	return nil
}

// NewAdminUsersCmd creates the admin users command group.
func NewAdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersList(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapValidation(fmt.Errorf("user id must be numeric: %q", args[0]), "deleting user")
			}
			return runAdminUsersDelete(cmd.Context(), id)
		},
	})

	return cmd
}

func runAdminUsersList(ctx context.Context) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin/users"); err != nil {
		return err
	}

	users, err := a.Client.ListUsers(ctx)
	if err != nil {
		return err
	}

	tbl := output.NewTable("ID", "USERNAME", "EMAIL", "ROLE")
	for _, u := range users {
		tbl.Row(strconv.Itoa(u.ID), u.Username, u.Email, u.Role)
	}
	output.Println(tbl.String())
	return nil
}

func runAdminUsersDelete(ctx context.Context, id int) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin/users"); err != nil {
		return err
	}

	if err := a.Client.DeleteUser(ctx, id); err != nil {
		return err
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("deleted user %d", id)))
	return nil
}
