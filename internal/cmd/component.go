package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/catalog"
	"github.com/buildmaster/cli/internal/output"
)

// NewComponentCmd creates the component command group.
func NewComponentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "component",
		Aliases: []string{"components", "comp"},
		Short:   "Browse and manage the component catalog",
	}

	cmd.AddCommand(NewComponentListCmd())
	cmd.AddCommand(NewComponentShowCmd())
	cmd.AddCommand(NewComponentSearchCmd())
	cmd.AddCommand(NewComponentCreateCmd())
	cmd.AddCommand(NewComponentUpdateCmd())
	cmd.AddCommand(NewComponentDeleteCmd())
	cmd.AddCommand(NewComponentCrawlCmd())

	return cmd
}

// NewComponentListCmd creates the component list command.
func NewComponentListCmd() *cobra.Command {
	var (
		typeFlag   string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog components",
		Long: `List components from the catalog, optionally filtered by slot type.

Slot types: cpu, gpu, motherboard, ram, storage, psu, case, cooler.
Synonyms like "memory" and "power_supply" are accepted.

Examples:
  # List the whole catalog
  buildmaster component list

  # List graphics cards as JSON
  buildmaster component list --type gpu -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentList(cmd.Context(), typeFlag, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Filter by slot type")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")

	return cmd
}

func runComponentList(ctx context.Context, slotType, outputFmt string) error {
	a := getApp()

	components, err := fetchComponents(ctx, a, slotType)
	if err != nil {
		return err
	}

	rendered, err := renderComponents(components, resolvedFormat(outputFmt))
	if err != nil {
		return err
	}
	output.Println(rendered)
	return nil
}

// NewComponentShowCmd creates the component show command.
func NewComponentShowCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one component in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentShow(cmd.Context(), args[0], outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")

	return cmd
}

func runComponentShow(ctx context.Context, id, outputFmt string) error {
	a := getApp()

	c, err := findComponent(ctx, a, id)
	if err != nil {
		return err
	}

	rendered, err := renderComponentDetail(c, resolvedFormat(outputFmt))
	if err != nil {
		return err
	}
	output.Println(rendered)
	return nil
}

// NewComponentSearchCmd creates the component search command.
func NewComponentSearchCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search the catalog by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentSearch(cmd.Context(), strings.Join(args, " "), outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table, yaml, json)")

	return cmd
}

func runComponentSearch(ctx context.Context, keyword, outputFmt string) error {
	a := getApp()

	var components []catalog.Component
	if a.MockMode() {
		needle := strings.ToLower(keyword)
		for _, c := range catalog.MockComponents() {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				strings.Contains(strings.ToLower(c.Brand), needle) {
				components = append(components, c)
			}
		}
	} else {
		var records []catalog.RawRecord
		err := output.RunWithSpinner(ctx, func() error {
			var err error
			records, err = a.Client.SearchComponents(ctx, keyword)
			return err
		}, output.WithTitle("Searching catalog..."))
		if err != nil {
			return err
		}
		components = catalog.Normalize(records)
	}

	a.Cache.PutAll(components)

	if len(components) == 0 {
		output.Info("no components match", "keyword", keyword)
		return nil
	}

	rendered, err := renderComponents(components, resolvedFormat(outputFmt))
	if err != nil {
		return err
	}
	output.Println(rendered)
	return nil
}

// fetchComponents lists catalog components, honoring mock mode and the
// optional slot type filter. Results land in the id cache so later
// lookups by id stay local.
func fetchComponents(ctx context.Context, a *App, slotType string) ([]catalog.Component, error) {
	var components []catalog.Component

	if a.MockMode() {
		components = catalog.MockComponents()
		if slotType != "" {
			slot := catalog.NormalizeSlotType(slotType)
			filtered := make([]catalog.Component, 0, len(components))
			for _, c := range components {
				if c.Slot == slot {
					filtered = append(filtered, c)
				}
			}
			components = filtered
		}
	} else {
		var records []catalog.RawRecord
		err := output.RunWithSpinner(ctx, func() error {
			var err error
			if slotType != "" {
				records, err = a.Client.ComponentsByType(ctx, slotType)
			} else {
				records, err = a.Client.ListComponents(ctx)
			}
			return err
		}, output.WithTitle("Fetching catalog..."))
		if err != nil {
			return nil, err
		}
		components = catalog.Normalize(records)
	}

	a.Cache.PutAll(components)
	return components, nil
}

// findComponent resolves a component by id: cache first, then mock
// dataset or backend.
func findComponent(ctx context.Context, a *App, id string) (catalog.Component, error) {
	if c, ok := a.Cache.Get(id); ok {
		return c, nil
	}

	if a.MockMode() {
		for _, c := range catalog.MockComponents() {
			if c.ID == id {
				a.Cache.Put(c)
				return c, nil
			}
		}
		return catalog.Component{}, WrapNotFound(fmt.Errorf("component %q", id), "looking up component")
	}

	record, err := a.Client.GetComponent(ctx, id)
	if err != nil {
		return catalog.Component{}, err
	}
	c := catalog.NormalizeRecord(record)
	a.Cache.Put(c)
	return c, nil
}
