package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/catalog"
	"github.com/buildmaster/cli/internal/output"
)

// componentFlags collects the create/update form fields.
type componentFlags struct {
	Name        string
	Type        string
	Brand       string
	Model       string
	Price       float64
	Image       string
	ImageFile   string
	Specs       string
	Description string
	Stock       int
}

// addTo registers the form flags on a command.
func (f *componentFlags) addTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "", "Component name")
	cmd.Flags().StringVar(&f.Type, "type", "", "Slot type (cpu, gpu, motherboard, ram, storage, psu, case, cooler)")
	cmd.Flags().StringVar(&f.Brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&f.Model, "model", "", "Model")
	cmd.Flags().Float64Var(&f.Price, "price", 0, "Price in yuan")
	cmd.Flags().StringVar(&f.Image, "image", "", "Image URL")
	cmd.Flags().StringVar(&f.ImageFile, "image-file", "", "Local image to upload before saving")
	cmd.Flags().StringVar(&f.Specs, "specs", "", "Specifications as a JSON object")
	cmd.Flags().StringVar(&f.Description, "description", "", "Description")
	cmd.Flags().IntVar(&f.Stock, "stock", 0, "Stock quantity")
}

// request builds the wire payload, uploading the local image first
// when one was given.
func (f *componentFlags) request(ctx context.Context, a *App) (api.ComponentRequest, error) {
	image := f.Image
	if f.ImageFile != "" {
		file, err := os.Open(f.ImageFile)
		if err != nil {
			return api.ComponentRequest{}, fmt.Errorf("opening image file: %w", err)
		}
		defer func() { _ = file.Close() }()

		url, err := a.Client.UploadComponentImage(ctx, f.ImageFile, file)
		if err != nil {
			return api.ComponentRequest{}, fmt.Errorf("uploading image: %w", err)
		}
		image = url
	}

	return api.ComponentRequest{
		Name:           f.Name,
		Type:           string(catalog.NormalizeSlotType(f.Type)),
		Brand:          f.Brand,
		Model:          f.Model,
		Price:          f.Price,
		ImageURL:       image,
		Specifications: f.Specs,
		Description:    f.Description,
		StockQuantity:  f.Stock,
	}, nil
}

// NewComponentCreateCmd creates the component create command.
func NewComponentCreateCmd() *cobra.Command {
	var flags componentFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a component to the catalog (admin)",
		Long: `Add a component to the catalog. Requires an admin session.

Examples:
  buildmaster component create --name "Core i7-13700K" --type cpu \
    --brand Intel --price 2499 --specs '{"cores":16,"threads":24}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentCreate(cmd.Context(), &flags)
		},
	}

	flags.addTo(cmd)
	return cmd
}

func runComponentCreate(ctx context.Context, flags *componentFlags) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin/components"); err != nil {
		return err
	}

	req, err := flags.request(ctx, a)
	if err != nil {
		return err
	}

	record, err := a.Client.CreateComponent(ctx, req)
	if err != nil {
		return err
	}

	c := catalog.NormalizeRecord(record)
	a.Cache.Put(c)
	output.Println(output.FormatCheckmark(fmt.Sprintf("created component %s (%s)",
		output.StyleNoun.Render(c.Name), c.ID)))
	return nil
}

// NewComponentUpdateCmd creates the component update command.
func NewComponentUpdateCmd() *cobra.Command {
	var flags componentFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog component (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentUpdate(cmd.Context(), args[0], &flags)
		},
	}

	flags.addTo(cmd)
	return cmd
}

func runComponentUpdate(ctx context.Context, id string, flags *componentFlags) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin/components"); err != nil {
		return err
	}

	req, err := flags.request(ctx, a)
	if err != nil {
		return err
	}

	record, err := a.Client.UpdateComponent(ctx, id, req)
	if err != nil {
		return err
	}

	c := catalog.NormalizeRecord(record)
	a.Cache.Put(c)
	output.Println(output.FormatCheckmark(fmt.Sprintf("updated component %s", c.ID)))
	return nil
}

// NewComponentDeleteCmd creates the component delete command.
func NewComponentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a catalog component (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentDelete(cmd.Context(), args[0])
		},
	}
}

func runComponentDelete(ctx context.Context, id string) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin/components"); err != nil {
		return err
	}

	if err := a.Client.DeleteComponent(ctx, id); err != nil {
		return err
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("deleted component %s", id)))
	return nil
}

// NewComponentCrawlCmd creates the component crawl command.
func NewComponentCrawlCmd() *cobra.Command {
	var (
		typeFlag    string
		sourceFlag  string
		keywordFlag string
		maxFlag     int
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Import components from a retail source (admin)",
		Long: `Ask the backend to crawl a retail source and import the listings
into the catalog.

Examples:
  buildmaster component crawl --type gpu --source jd --keyword "RTX 4070" --max 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponentCrawl(cmd.Context(), api.CrawlRequest{
				Type:     typeFlag,
				Source:   sourceFlag,
				Keyword:  keywordFlag,
				MaxCount: maxFlag,
			})
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Slot type to import as")
	cmd.Flags().StringVar(&sourceFlag, "source", "jd", "Retail source (jd, taobao)")
	cmd.Flags().StringVar(&keywordFlag, "keyword", "", "Search keyword on the source")
	cmd.Flags().IntVar(&maxFlag, "max", 20, "Maximum listings to import")

	return cmd
}

func runComponentCrawl(ctx context.Context, req api.CrawlRequest) error {
	a := getApp()
	if err := a.RequireAdmin(ctx, "/admin/crawler"); err != nil {
		return err
	}

	var records []catalog.RawRecord
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		records, err = a.Client.Crawl(ctx, req)
		return err
	}, output.WithTitle(fmt.Sprintf("Crawling %s for %q...", req.Source, req.Keyword)))
	if err != nil {
		return err
	}

	components := catalog.Normalize(records)
	a.Cache.PutAll(components)
	output.Println(output.FormatCheckmark(fmt.Sprintf("imported %d components", len(components))))
	return nil
}
