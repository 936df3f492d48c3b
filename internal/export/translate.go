// Package export produces draft Vue and static HTML versions of React
// gallery components.
//
// The translation is textual: a fixed list of regular expression
// substitutions applied in order, followed by framework boilerplate. It does
// not parse markup, resolve composition or translate state and event logic.
// The output is a Draft meant for manual cleanup, never a finished component.
package export

import (
	"fmt"
	"regexp"

	"github.com/rayyanquantum/rayui/internal/errors"
)

// Target is an export framework.
type Target string

const (
	TargetVue  Target = "vue"
	TargetHTML Target = "html"
)

// Extension returns the output file extension for t.
func (t Target) Extension() string {
	return "." + string(t)
}

// AllTargets returns every export target in output order.
func AllTargets() []Target {
	return []Target{TargetVue, TargetHTML}
}

// ParseTargets maps a --framework value of vue, html or all onto targets.
func ParseTargets(s string) ([]Target, error) {
	switch s {
	case "", "all":
		return AllTargets(), nil
	case string(TargetVue):
		return []Target{TargetVue}, nil
	case string(TargetHTML):
		return []Target{TargetHTML}, nil
	default:
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFramework,
			fmt.Sprintf("unsupported export framework %q", s)).
			WithSuggestions(string(TargetVue), string(TargetHTML), "all")
	}
}

// Draft is a best-effort translation of one component. It carries no
// guarantee that Body is valid for the target framework.
type Draft struct {
	Target Target
	Name   string
	Body   string
}

// FileName returns the draft's output file name.
func (d Draft) FileName() string {
	return d.Name + d.Target.Extension()
}

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

func (s substitution) apply(src string) string {
	return s.pattern.ReplaceAllString(src, s.replacement)
}

// Applied in order; later rules see the output of earlier ones.
var (
	vueRules = []substitution{
		{regexp.MustCompile(`: JSX\.Element`), ""},
		{regexp.MustCompile(`export default function (\w+)\(\)`), "<template>"},
		{regexp.MustCompile(`className=`), "class="},
	}

	htmlRules = []substitution{
		{regexp.MustCompile(`import .+;`), ""},
		{regexp.MustCompile(`export default function .+\{`), ""},
		{regexp.MustCompile(`className=`), "class="},
	}
)

func rewrite(src string, rules []substitution) string {
	for _, rule := range rules {
		src = rule.apply(src)
	}
	return src
}

// ToVue drafts a Vue single-file component from React source.
func ToVue(src, name string) Draft {
	body := rewrite(src, vueRules)
	return Draft{
		Target: TargetVue,
		Name:   name,
		Body: fmt.Sprintf(`<script setup lang="ts">
// Component logic here
</script>

<template>
  <!-- Converted from React -->
  %s
</template>
`, body),
	}
}

// ToHTML drafts a standalone HTML page from React source.
func ToHTML(src, name string) Draft {
	body := rewrite(src, htmlRules)
	return Draft{
		Target: TargetHTML,
		Name:   name,
		Body: fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s - RayUI</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <link rel="stylesheet" href="/rayui-theme.css">
</head>
<body>
  %s
</body>
</html>
`, name, body),
	}
}

// Translate drafts src for target.
func Translate(target Target, src, name string) (Draft, error) {
	switch target {
	case TargetVue:
		return ToVue(src, name), nil
	case TargetHTML:
		return ToHTML(src, name), nil
	default:
		return Draft{}, fmt.Errorf("unsupported export target %q", target)
	}
}
