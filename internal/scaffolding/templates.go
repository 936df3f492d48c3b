package scaffolding

// ComponentTemplate is the fixed text template set for one framework.
type ComponentTemplate struct {
	Framework   Framework
	Description string
	Extension   string
	Content     string
	// DocContent is empty for frameworks whose stub cannot be embedded in
	// the MDX documentation pages.
	DocContent string
}

// TemplateContext holds the values substituted into a template.
type TemplateContext struct {
	BlockName     string
	Title         string
	ComponentName string
	Category      string
}

// GetBuiltinTemplates returns the template for every supported framework.
func GetBuiltinTemplates() map[Framework]ComponentTemplate {
	return map[Framework]ComponentTemplate{
		FrameworkReact: {
			Framework:   FrameworkReact,
			Description: "React + Tailwind function component with an MDX page",
			Extension:   ".tsx",
			Content:     reactTemplate,
			DocContent:  mdxTemplate,
		},
		FrameworkVue: {
			Framework:   FrameworkVue,
			Description: "Vue single-file component",
			Extension:   ".vue",
			Content:     vueTemplate,
		},
		FrameworkHTML: {
			Framework:   FrameworkHTML,
			Description: "Static HTML page using the Tailwind CDN",
			Extension:   ".html",
			Content:     htmlTemplate,
		},
	}
}

const reactTemplate = `import { JSX } from "react";

export default function {{.ComponentName}}(): JSX.Element {
  return (
    <div className="flex min-h-screen w-full items-center justify-center bg-background p-4">
      <div className="w-full max-w-md space-y-6">
        <div className="space-y-2 text-center">
          <h1 className="text-3xl font-bold tracking-tight text-foreground">
            {{.Title}}
          </h1>
          <p className="text-sm text-muted-foreground">
            Built with RayUI - Production-ready UI blocks
          </p>
        </div>

        <div className="rounded-lg border border-border bg-card p-6 shadow-sm">
          <div className="space-y-4">
            {/* Add your component content here */}
            <div className="flex items-center justify-center rounded-md bg-primary/10 p-8">
              <p className="text-sm text-primary">
                Your {{.Title}} content goes here
              </p>
            </div>
          </div>
        </div>

        <p className="text-center text-xs text-muted-foreground">
          Powered by RayUI • No copy-paste required
        </p>
      </div>
    </div>
  );
}
`

const mdxTemplate = `---
title: "{{.Title}}"
description: "A {{.Category}} block built with RayUI"
---

import {{.ComponentName}} from "./{{.BlockName}}";

<{{.ComponentName}} />
`

const vueTemplate = `<template>
  <div class="flex min-h-screen w-full items-center justify-center bg-background p-4">
    <div class="w-full max-w-md space-y-6">
      <div class="space-y-2 text-center">
        <h1 class="text-3xl font-bold tracking-tight text-foreground">
          {{.Title}}
        </h1>
        <p class="text-sm text-muted-foreground">
          Built with RayUI - Production-ready UI blocks
        </p>
      </div>

      <div class="rounded-lg border border-border bg-card p-6 shadow-sm">
        <div class="space-y-4">
          <!-- Add your component content here -->
          <div class="flex items-center justify-center rounded-md bg-primary/10 p-8">
            <p class="text-sm text-primary">
              Your {{.Title}} content goes here
            </p>
          </div>
        </div>
      </div>

      <p class="text-center text-xs text-muted-foreground">
        Powered by RayUI • No copy-paste required
      </p>
    </div>
  </div>
</template>

<script setup lang="ts">
// Add your component logic here
</script>
`

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - RayUI</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <style>
    :root {
      --background: oklch(1 0 0);
      --foreground: oklch(0.145 0 0);
      --primary: oklch(0.55 0.22 264);
      --muted-foreground: oklch(0.556 0 0);
      --border: oklch(0.922 0 0);
      --card: oklch(1 0 0);
    }
  </style>
</head>
<body class="bg-background">
  <div class="flex min-h-screen w-full items-center justify-center p-4">
    <div class="w-full max-w-md space-y-6">
      <div class="space-y-2 text-center">
        <h1 class="text-3xl font-bold tracking-tight text-foreground">
          {{.Title}}
        </h1>
        <p class="text-sm text-muted-foreground">
          Built with RayUI - Production-ready UI blocks
        </p>
      </div>

      <div class="rounded-lg border border-border bg-card p-6 shadow-sm">
        <div class="space-y-4">
          <!-- Add your component content here -->
          <div class="flex items-center justify-center rounded-md bg-primary/10 p-8">
            <p class="text-sm text-primary">
              Your {{.Title}} content goes here
            </p>
          </div>
        </div>
      </div>

      <p class="text-center text-xs text-muted-foreground">
        Powered by RayUI • No copy-paste required
      </p>
    </div>
  </div>
</body>
</html>
`
