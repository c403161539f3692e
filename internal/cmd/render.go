package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/buildmaster/cli/internal/catalog"
	"github.com/buildmaster/cli/internal/output"
)

// renderStructured serializes v for the yaml and json output formats.
func renderStructured(format output.OutputFormat, v any) (string, error) {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
		return string(data), nil
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		return string(data), nil
	}
}

// renderComponents renders a component listing in the chosen format.
func renderComponents(components []catalog.Component, format output.OutputFormat) (string, error) {
	if format != output.FormatTable {
		return renderStructured(format, components)
	}

	tbl := output.NewTable("ID", "TYPE", "NAME", "BRAND", "PRICE", "STOCK")
	for _, c := range components {
		stock := strconv.Itoa(c.StockQuantity)
		if !c.Available {
			stock = "out of stock"
		}
		tbl.Row(c.ID, string(c.Slot), c.Name, c.Brand, fmt.Sprintf("¥%.2f", c.Price), stock)
	}
	return tbl.String(), nil
}

// renderComponentDetail renders a single component with its
// specifications expanded.
func renderComponentDetail(c catalog.Component, format output.OutputFormat) (string, error) {
	if format != output.FormatTable {
		return renderStructured(format, c)
	}

	tbl := output.NewTable("FIELD", "VALUE")
	tbl.Row("ID", c.ID)
	tbl.Row("Name", c.Name)
	tbl.Row("Type", string(c.Slot))
	tbl.Row("Brand", c.Brand)
	tbl.Row("Model", c.Model)
	tbl.Row("Price", fmt.Sprintf("¥%.2f", c.Price))
	if c.OriginalPrice > c.Price {
		tbl.Row("Original price", fmt.Sprintf("¥%.2f", c.OriginalPrice))
	}
	tbl.Row("Image", catalog.ResolveImage(c).Current())
	tbl.Row("Stock", strconv.Itoa(c.StockQuantity))
	tbl.Row("Available", strconv.FormatBool(c.Available))
	for key, value := range c.Specs.Attributes() {
		tbl.Row("spec: "+key, fmt.Sprintf("%v", value))
	}
	return tbl.String(), nil
}
