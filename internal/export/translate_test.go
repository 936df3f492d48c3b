package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayyanquantum/rayui/internal/errors"
)

const reactSource = `import { JSX } from "react";
import { Button } from "@/components/ui/button";

export default function Login01(): JSX.Element {
  return (
    <div className="flex min-h-screen">
      <Button className="w-full">Sign in</Button>
    </div>
  );
}
`

func TestToVue(t *testing.T) {
	draft := ToVue(reactSource, "login-01")

	assert.Equal(t, TargetVue, draft.Target)
	assert.Equal(t, "login-01.vue", draft.FileName())
	assert.True(t, strings.HasPrefix(draft.Body, "<script setup lang=\"ts\">\n// Component logic here\n</script>\n\n<template>\n  <!-- Converted from React -->\n"))
	assert.True(t, strings.HasSuffix(draft.Body, "</template>\n"))
	assert.NotContains(t, draft.Body, "JSX.Element")
	assert.NotContains(t, draft.Body, "className=")
	assert.NotContains(t, draft.Body, "export default function")
	assert.Contains(t, draft.Body, `<div class="flex min-h-screen">`)
	// imports are left alone in the Vue draft
	assert.Contains(t, draft.Body, `import { JSX } from "react";`)
	assert.Equal(t, 2, strings.Count(draft.Body, "<template>"))
}

func TestToHTML(t *testing.T) {
	draft := ToHTML(reactSource, "login-01")

	assert.Equal(t, TargetHTML, draft.Target)
	assert.Equal(t, "login-01.html", draft.FileName())
	assert.True(t, strings.HasPrefix(draft.Body, "<!DOCTYPE html>\n<html lang=\"en\">"))
	assert.Contains(t, draft.Body, "<title>login-01 - RayUI</title>")
	assert.Contains(t, draft.Body, `<script src="https://cdn.tailwindcss.com"></script>`)
	assert.Contains(t, draft.Body, `<link rel="stylesheet" href="/rayui-theme.css">`)
	assert.NotContains(t, draft.Body, "import ")
	assert.NotContains(t, draft.Body, "export default function")
	assert.NotContains(t, draft.Body, "className=")
	assert.Contains(t, draft.Body, `<Button class="w-full">Sign in</Button>`)
}

func TestSubstitutionOrder(t *testing.T) {
	// The signature rule runs after the JSX.Element rule has removed the
	// return type, so the whole declaration is replaced.
	draft := ToVue("export default function Card(): JSX.Element {", "card")
	assert.Contains(t, draft.Body, "<template> {")
}

func TestTranslateIsDeterministic(t *testing.T) {
	for _, target := range AllTargets() {
		a, err := Translate(target, reactSource, "x")
		require.NoError(t, err)
		b, err := Translate(target, reactSource, "x")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	_, err := Translate("svelte", reactSource, "x")
	assert.Error(t, err)
}

func TestParseTargets(t *testing.T) {
	all, err := ParseTargets("all")
	require.NoError(t, err)
	assert.Equal(t, []Target{TargetVue, TargetHTML}, all)

	def, err := ParseTargets("")
	require.NoError(t, err)
	assert.Equal(t, all, def)

	vue, err := ParseTargets("vue")
	require.NoError(t, err)
	assert.Equal(t, []Target{TargetVue}, vue)

	_, err = ParseTargets("react")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	var re *errors.RayError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, errors.ErrCodeInvalidFramework, re.Code)
	assert.Equal(t, []string{"vue", "html", "all"}, re.Suggestions)
}
