package cmd

import (
	"fmt"
	"io"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/scaffolding"
	"github.com/spf13/cobra"
)

type newOptions struct {
	category  string
	framework string
	register  bool
}

func newNewCmd(root *rootOptions) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new <block-name>",
		Short: "Scaffold a new block",
		Long: `Scaffold a new block: a component stub under content/components/<category>/
and, for React, a documentation stub under content/markdown/<category>/.

The block name must be kebab-case. The category must be one of the gallery
categories; nothing is written when it is not.

Examples:
  rayui new pricing-card --category stats
  rayui new login-05 --register
  rayui new upload-zone --category file-upload --framework vue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", catalog.DefaultCategory, "block category")
	cmd.Flags().StringVarP(&opts.framework, "framework", "f", string(scaffolding.FrameworkReact), "component framework (react, vue, html)")
	cmd.Flags().BoolVarP(&opts.register, "register", "r", false, "append the block to the catalog file")

	return cmd
}

func runNew(cmd *cobra.Command, root *rootOptions, opts *newOptions, blockName string) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	headerColor.Fprintf(out, "\n🚀 Creating new RayUI block: %s\n", blockName)
	fmt.Fprintf(out, "   Category: %s\n", opts.category)
	fmt.Fprintf(out, "   Framework: %s\n\n", opts.framework)

	framework, err := scaffolding.ParseFramework(opts.framework)
	if err != nil {
		return err
	}

	generator := scaffolding.NewBlockGenerator(cfg.Content.Dir, cfg.Content.Catalog, out, logger)
	result, err := generator.Generate(cmd.Context(), scaffolding.GenerateOptions{
		BlockName: blockName,
		Category:  opts.category,
		Framework: framework,
		Register:  opts.register,
	})
	if err != nil {
		return err
	}

	successColor.Fprintf(out, "\n✅ Successfully created %s!\n", blockName)
	fmt.Fprintln(out, "\n📁 Files created:")
	bullet(out, "%s", result.ComponentPath)
	if result.DocPath != "" {
		bullet(out, "%s", result.DocPath)
	}

	if !result.Registered {
		printNextSteps(out, cfg.Content.Catalog, result.Record)
	}
	return nil
}

func printNextSteps(w io.Writer, catalogPath string, rec catalog.ComponentRecord) {
	fmt.Fprintln(w, "\n📝 Next steps:")
	fmt.Fprintf(w, "   1. Add a catalog entry to %s (or rerun with --register):\n", catalogPath)
	fmt.Fprintf(w, "        - id: %s\n", rec.ID)
	fmt.Fprintf(w, "          category: %s\n", rec.Category)
	fmt.Fprintf(w, "          name: %s\n", rec.Name)
	fmt.Fprintf(w, "          type: %s\n", rec.Kind)
	fmt.Fprintln(w, "   2. Check the counts: rayui categories")
	fmt.Fprintln(w, "   3. Preview: rayui serve --watch")
}
