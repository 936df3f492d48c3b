package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/spf13/cobra"
)

type categoriesOptions struct {
	format   string
	validate bool
}

type categoryJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	HasCharts bool   `json:"hasCharts,omitempty"`
}

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	opts := &categoriesOptions{}

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Show the number of blocks in each category",
		Long: `Categories aggregates the catalog: every gallery category with the number
of blocks that reference it, sorted by display name. A missing catalog file
is treated as an empty catalog.

With --validate the catalog is also checked for empty or duplicate ids,
unknown types and references to categories that do not exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "report catalog integrity problems")

	return cmd
}

func runCategories(cmd *cobra.Command, root *rootOptions, opts *categoriesOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("invalid format %q", opts.format)).WithSuggestions("table", "json")
	}

	cfg, err := root.load()
	if err != nil {
		return err
	}

	var records []catalog.ComponentRecord
	if _, err := os.Stat(cfg.Content.Catalog); !os.IsNotExist(err) {
		if records, err = catalog.Load(cfg.Content.Catalog); err != nil {
			return err
		}
	}

	categories := catalog.Aggregate(records, catalog.DefaultCategories())
	out := cmd.OutOrStdout()

	if opts.format == "json" {
		if err := writeCategoriesJSON(out, categories); err != nil {
			return err
		}
	} else {
		writeCategoriesTable(out, categories)
	}

	if !opts.validate {
		return nil
	}

	issues := catalog.Validate(records, catalog.DefaultCategories())
	if len(issues) == 0 {
		successColor.Fprintln(cmd.ErrOrStderr(), "\n✅ Catalog is valid")
		return nil
	}

	warnColor.Fprintf(cmd.ErrOrStderr(), "\n⚠️  %d catalog problems:\n", len(issues))
	for _, issue := range issues {
		bullet(cmd.ErrOrStderr(), "%s", issue)
	}
	return errors.NewValidationError(errors.ErrCodeCatalogInvalid,
		fmt.Sprintf("catalog has %d problems", len(issues))).WithPath(cfg.Content.Catalog)
}

func writeCategoriesTable(w io.Writer, categories []catalog.CategoryRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headerColor.Fprintln(tw, "NAME\tID\tBLOCKS")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Name, c.ID, c.Count)
	}
	fmt.Fprintf(tw, "\t\t\nTotal\t\t%d\n", catalog.Total(categories))
	_ = tw.Flush()
}

func writeCategoriesJSON(w io.Writer, categories []catalog.CategoryRecord) error {
	items := make([]categoryJSON, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryJSON{ID: c.ID, Name: c.Name, Count: c.Count, HasCharts: c.HasCharts})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
