package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/build"
	"github.com/buildmaster/cli/internal/catalog"
	"github.com/buildmaster/cli/internal/output"
)

// NewBuildCmd creates the build command group.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble and manage the working build",
		Long: `Assemble a PC build slot by slot. The working build persists between
invocations; saving uploads a named snapshot to your account.`,
	}

	cmd.AddCommand(NewBuildAddCmd())
	cmd.AddCommand(NewBuildRemoveCmd())
	cmd.AddCommand(NewBuildClearCmd())
	cmd.AddCommand(NewBuildShowCmd())
	cmd.AddCommand(NewBuildSaveCmd())
	cmd.AddCommand(NewBuildListCmd())
	cmd.AddCommand(NewBuildLoadCmd())
	cmd.AddCommand(NewBuildDeleteCmd())
	cmd.AddCommand(NewBuildCheckCmd())
	cmd.AddCommand(NewBuildDiffCmd())

	return cmd
}

// NewBuildAddCmd creates the build add command.
func NewBuildAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <component-id>",
		Short: "Put a component into its slot",
		Long: `Put a component into its slot. A slot holds one component; adding a
second one for the same slot replaces the first, and the total follows.

Examples:
  buildmaster build add cpu-1
  buildmaster build add gpu-42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildAdd(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runBuildAdd(ctx context.Context, id string) error {
	a := getApp()

	c, err := findComponent(ctx, a, id)
	if err != nil {
		return err
	}

	replaced, hadPrevious := a.Build.Component(c.Slot)
	if err := a.Build.AddOrReplace(c); err != nil {
		return WrapValidation(err, "adding component")
	}
	warnPersistence(a)

	if hadPrevious && replaced.ID != c.ID {
		output.Info("replaced slot occupant", "slot", string(c.Slot), "was", replaced.Name)
	}
	output.Println(output.FormatSlotLine(string(c.Slot), c.Name, output.StatusSelected))
	output.Println(fmt.Sprintf("total: %s", output.FormatPrice(a.Build.Total())))
	return nil
}

// NewBuildRemoveCmd creates the build remove command.
func NewBuildRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <slot>",
		Short: "Vacate a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildRemove(args[0])
		},
	}
}

func runBuildRemove(slot string) error {
	a := getApp()

	normalized := catalog.NormalizeSlotType(slot)
	if !a.Build.Remove(normalized) {
		output.Info("slot already empty", "slot", string(normalized))
		return nil
	}
	warnPersistence(a)

	output.Println(output.FormatSlotLine(string(normalized), "", output.StatusRemoved))
	output.Println(fmt.Sprintf("total: %s", output.FormatPrice(a.Build.Total())))
	return nil
}

// NewBuildClearCmd creates the build clear command.
func NewBuildClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the working build",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			a.Build.Clear()
			warnPersistence(a)
			output.Println(output.FormatCheckmark("build cleared"))
			return nil
		},
	}
}

// NewBuildShowCmd creates the build show command.
func NewBuildShowCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the working build",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildShow(outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")
	return cmd
}

func runBuildShow(outputFmt string) error {
	a := getApp()
	selection := a.Build.Selection()

	format := resolvedFormat(outputFmt)
	if format != output.FormatTable {
		rendered, err := renderStructured(format, map[string]any{
			"components": selection,
			"totalPrice": selection.Total(),
		})
		if err != nil {
			return err
		}
		output.Println(rendered)
		return nil
	}

	output.Println(output.RenderRig("working build", selection, selection.Total()))
	return nil
}

// NewBuildSaveCmd creates the build save command.
func NewBuildSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Save the working build to your account",
		Long: `Save the working build under a name. The command waits for the backend
to confirm; when it fails, nothing is marked saved and the same build
can be retried.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildSave(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func runBuildSave(ctx context.Context, name string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/build/save"); err != nil {
		return err
	}

	var snap build.Snapshot
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		snap, err = a.Build.Save(ctx, name)
		return err
	}, output.WithTitle(fmt.Sprintf("Saving build %q...", name)))
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("saved build %s (%s, %s)",
		output.StyleNoun.Render(snap.Name), snap.ID, output.FormatPrice(snap.TotalPrice))))
	return nil
}

// NewBuildListCmd creates the build list command.
func NewBuildListCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildList(cmd.Context(), outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")
	return cmd
}

func runBuildList(ctx context.Context, outputFmt string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/build/list"); err != nil {
		return err
	}

	builds, err := a.Client.ListBuilds(ctx)
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		output.Info("no saved builds")
		return nil
	}

	format := resolvedFormat(outputFmt)
	if format != output.FormatTable {
		rendered, err := renderStructured(format, builds)
		if err != nil {
			return err
		}
		output.Println(rendered)
		return nil
	}

	tbl := output.NewTable("ID", "NAME", "PARTS", "TOTAL", "CREATED")
	for _, b := range builds {
		created := ""
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.Format("2006-01-02 15:04")
		}
		tbl.Row(b.ID, b.Name, fmt.Sprintf("%d", len(b.Components)),
			fmt.Sprintf("¥%.2f", b.TotalPrice), created)
	}
	output.Println(tbl.String())
	return nil
}

// NewBuildLoadCmd creates the build load command.
func NewBuildLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <id-or-name>",
		Short: "Replace the working build with a saved one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildLoad(cmd.Context(), args[0])
		},
	}
}

func runBuildLoad(ctx context.Context, ref string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/build/load"); err != nil {
		return err
	}

	cfg, err := findSavedBuild(ctx, a, ref)
	if err != nil {
		return err
	}

	a.Build.Install(build.SnapshotFromWire(cfg))
	warnPersistence(a)
	output.Println(output.FormatCheckmark(fmt.Sprintf("loaded build %s (%s)",
		output.StyleNoun.Render(cfg.Name), output.FormatPrice(a.Build.Total()))))
	return nil
}

// NewBuildDeleteCmd creates the build delete command.
func NewBuildDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-or-name>",
		Short: "Delete a saved build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildDelete(cmd.Context(), args[0])
		},
	}
}

func runBuildDelete(ctx context.Context, ref string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/build/delete"); err != nil {
		return err
	}

	cfg, err := findSavedBuild(ctx, a, ref)
	if err != nil {
		return err
	}

	if err := a.Client.DeleteBuild(ctx, cfg.ID); err != nil {
		return err
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("deleted build %s", cfg.Name)))
	return nil
}

// NewBuildCheckCmd creates the build check command.
func NewBuildCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check part compatibility with the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildCheck(cmd.Context())
		},
	}
}

func runBuildCheck(ctx context.Context) error {
	a := getApp()

	selection := a.Build.Selection()
	if len(selection) == 0 {
		return WrapValidation(fmt.Errorf("the working build is empty"), "checking compatibility")
	}

	ids := make(map[catalog.SlotType]string, len(selection))
	for slot, c := range selection {
		ids[slot] = c.ID
	}

	var result api.CompatibilityResult
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		result, err = a.Client.CheckCompatibility(ctx, ids)
		return err
	}, output.WithTitle("Checking compatibility..."))
	if err != nil {
		return err
	}

	if result.Compatible {
		output.Println(output.FormatCheckmark("all selected parts are compatible"))
	} else {
		output.Println(output.StyleError.Render("incompatible selection"))
	}
	for _, issue := range result.Issues {
		output.Println("  " + output.StyleError.Render("issue: "+issue))
	}
	for _, warning := range result.Warnings {
		output.Println("  " + output.StyleWarning.Render("warning: "+warning))
	}
	if !result.Compatible {
		return NewExitError(fmt.Errorf("build has %d compatibility issues", len(result.Issues)), ExitGeneralError)
	}
	return nil
}

// NewBuildDiffCmd creates the build diff command.
func NewBuildDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <id-or-name>",
		Short: "Diff the working build against a saved one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildDiff(cmd.Context(), args[0])
		},
	}
}

func runBuildDiff(ctx context.Context, ref string) error {
	a := getApp()
	if err := a.RequireAuth(ctx, "/build/diff"); err != nil {
		return err
	}

	cfg, err := findSavedBuild(ctx, a, ref)
	if err != nil {
		return err
	}

	selection := a.Build.Selection()
	current := map[string]any{
		"components": selectionIDs(selection),
		"totalPrice": selection.Total(),
	}
	saved := map[string]any{
		"components": buildConfigIDs(cfg),
		"totalPrice": cfg.TotalPrice,
	}

	diff, err := output.DiffBuilds("working", current, cfg.Name, saved)
	if err != nil {
		return err
	}
	if diff == "" {
		output.Println(output.FormatCheckmark(fmt.Sprintf("working build matches %q", cfg.Name)))
		return nil
	}
	output.Println(diff)
	return nil
}

// findSavedBuild resolves a saved build by id or, failing that, name.
func findSavedBuild(ctx context.Context, a *App, ref string) (api.BuildConfig, error) {
	builds, err := a.Client.ListBuilds(ctx)
	if err != nil {
		return api.BuildConfig{}, err
	}

	for _, b := range builds {
		if b.ID == ref {
			return b, nil
		}
	}
	for _, b := range builds {
		if strings.EqualFold(b.Name, ref) {
			return b, nil
		}
	}
	return api.BuildConfig{}, WrapNotFound(fmt.Errorf("saved build %q", ref), "resolving build")
}

// selectionIDs flattens a selection to slot/id pairs for diffing.
func selectionIDs(sel build.Selection) map[string]string {
	out := make(map[string]string, len(sel))
	for slot, c := range sel {
		out[string(slot)] = c.ID
	}
	return out
}

// buildConfigIDs flattens a stored build to slot/id pairs for diffing.
func buildConfigIDs(cfg api.BuildConfig) map[string]string {
	out := make(map[string]string, len(cfg.Components))
	for slot, c := range cfg.Components {
		out[string(slot)] = c.ID
	}
	return out
}

// warnPersistence reports a degraded build mirror without failing the
// command.
func warnPersistence(a *App) {
	if err := a.Build.LastError(); err != nil {
		output.Warn("build changes are not being persisted", "error", err)
	}
}
