// Package scaffolding generates new gallery blocks: a component stub for the
// chosen framework, an MDX documentation stub for React blocks, and
// optionally a catalog entry registering the block.
package scaffolding

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/logging"
)

// Framework is the target framework of a generated component.
type Framework string

const (
	FrameworkReact Framework = "react"
	FrameworkVue   Framework = "vue"
	FrameworkHTML  Framework = "html"
)

// Frameworks lists the supported frameworks.
func Frameworks() []string {
	return []string{string(FrameworkReact), string(FrameworkVue), string(FrameworkHTML)}
}

// ParseFramework validates a --framework value.
func ParseFramework(s string) (Framework, error) {
	switch f := Framework(strings.ToLower(s)); f {
	case FrameworkReact, FrameworkVue, FrameworkHTML:
		return f, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidFramework,
			fmt.Sprintf("invalid framework %q", s)).WithSuggestions(Frameworks()...)
	}
}

// BlockGenerator writes scaffolds below a content directory laid out as
// components/<category>/ and markdown/<category>/.
type BlockGenerator struct {
	templates   map[Framework]ComponentTemplate
	contentDir  string
	catalogPath string
	out         io.Writer
	logger      logging.Logger
}

// GenerateOptions holds options for block generation
type GenerateOptions struct {
	BlockName string
	Category  string
	Framework Framework
	Register  bool
}

// Result describes what Generate wrote.
type Result struct {
	Record        catalog.ComponentRecord
	ComponentPath string
	// DocPath is empty when the framework has no documentation stub.
	DocPath    string
	Registered bool
}

// NewBlockGenerator creates a generator rooted at contentDir. Progress lines
// go to out; catalogPath is the file --register appends to.
func NewBlockGenerator(contentDir, catalogPath string, out io.Writer, logger logging.Logger) *BlockGenerator {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &BlockGenerator{
		templates:   GetBuiltinTemplates(),
		contentDir:  contentDir,
		catalogPath: catalogPath,
		out:         out,
		logger:      logger.WithComponent("scaffolding"),
	}
}

// ComponentsDir returns the directory component sources live in.
func (g *BlockGenerator) ComponentsDir() string {
	return filepath.Join(g.contentDir, "components")
}

// MarkdownDir returns the directory documentation stubs live in.
func (g *BlockGenerator) MarkdownDir() string {
	return filepath.Join(g.contentDir, "markdown")
}

// Validate checks opts without touching the filesystem beyond reading the
// catalog when registration is requested.
func (g *BlockGenerator) Validate(opts GenerateOptions) error {
	if err := ValidateBlockName(opts.BlockName); err != nil {
		return err
	}

	if !catalog.IsValidCategory(opts.Category) {
		return errors.NewValidationError(errors.ErrCodeInvalidCategory,
			fmt.Sprintf("invalid category %q", opts.Category)).
			WithSuggestions(catalog.CategoryIDs()...)
	}

	if _, ok := g.templates[opts.Framework]; !ok {
		_, err := ParseFramework(string(opts.Framework))
		return err
	}

	if opts.Register {
		records, err := catalog.Load(g.catalogPath)
		if err != nil && !errors.IsRead(err) {
			return err
		}
		if _, exists := catalog.Find(records, opts.BlockName); exists {
			return errors.NewValidationError(errors.ErrCodeInvalidBlockName,
				fmt.Sprintf("block %q is already registered", opts.BlockName)).
				WithPath(g.catalogPath)
		}
	}

	return nil
}

// Generate validates opts and then writes the scaffold. Validation failures
// leave the filesystem untouched. Existing files are overwritten, and a
// failure part way through leaves earlier files in place.
func (g *BlockGenerator) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	if opts.Framework == "" {
		opts.Framework = FrameworkReact
	}
	if err := g.Validate(opts); err != nil {
		return nil, err
	}

	tmpl := g.templates[opts.Framework]
	tctx := TemplateContext{
		BlockName:     opts.BlockName,
		Title:         FormatName(opts.BlockName),
		ComponentName: ToPascalCase(opts.BlockName),
		Category:      opts.Category,
	}
	result := &Result{
		Record: catalog.ComponentRecord{
			ID:       opts.BlockName,
			Category: opts.Category,
			Name:     tctx.Title,
			Kind:     catalog.KindFile,
		},
	}

	componentDir := filepath.Join(g.ComponentsDir(), opts.Category)
	markdownDir := filepath.Join(g.MarkdownDir(), opts.Category)
	for _, dir := range []string{componentDir, markdownDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.WrapFileSystem(err, errors.ErrCodeCreateDir, "failed to create directory", dir)
		}
	}

	result.ComponentPath = filepath.Join(componentDir, opts.BlockName+tmpl.Extension)
	if err := g.generateFile(result.ComponentPath, tmpl.Content, tctx); err != nil {
		return nil, err
	}
	fmt.Fprintf(g.out, "✅ Generated component: %s\n", result.ComponentPath)

	if tmpl.DocContent != "" {
		result.DocPath = filepath.Join(markdownDir, opts.BlockName+".mdx")
		if err := g.generateFile(result.DocPath, tmpl.DocContent, tctx); err != nil {
			return result, err
		}
		fmt.Fprintf(g.out, "✅ Generated docs: %s\n", result.DocPath)
	}

	if opts.Register {
		if err := catalog.Append(g.catalogPath, result.Record); err != nil {
			return result, err
		}
		result.Registered = true
		fmt.Fprintf(g.out, "✅ Auto-registered in %s\n", filepath.Base(g.catalogPath))
	}

	g.logger.Info(ctx, "Generated block",
		"block", opts.BlockName,
		"category", opts.Category,
		"framework", string(opts.Framework),
		"registered", result.Registered)

	return result, nil
}

// generateFile renders content into filename. The template is rendered in
// memory first so a template error never leaves a truncated file behind.
func (g *BlockGenerator) generateFile(filename, content string, ctx TemplateContext) error {
	tmpl, err := template.New(filepath.Base(filename)).Parse(content)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeInternalError, "failed to parse template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return errors.NewInternalError(errors.ErrCodeInternalError, "failed to execute template", err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return errors.WrapFileSystem(err, errors.ErrCodeWriteFile, "failed to write file", filename)
	}
	return nil
}

var blockNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateBlockName checks that name is lower kebab-case starting with a
// letter, so both the file name and the derived component identifier are
// usable.
func ValidateBlockName(name string) error {
	if name == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidBlockName, "block name cannot be empty")
	}
	if !blockNamePattern.MatchString(name) {
		return errors.NewValidationError(errors.ErrCodeInvalidBlockName,
			fmt.Sprintf("block name %q must be kebab-case (e.g. pricing-card)", name))
	}
	return nil
}

// FormatName turns a kebab-case block name into a display title:
// "pricing-card" becomes "Pricing Card". Only the first character of each
// part is upper-cased, so "login-2fa" becomes "Login 2fa".
func FormatName(blockName string) string {
	return strings.Join(capitalizeParts(blockName), " ")
}

// ToPascalCase turns a kebab-case block name into a component identifier:
// "pricing-card" becomes "PricingCard".
func ToPascalCase(blockName string) string {
	return strings.Join(capitalizeParts(blockName), "")
}

func capitalizeParts(blockName string) []string {
	parts := strings.Split(blockName, "-")
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}
	return parts
}
