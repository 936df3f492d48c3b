package catalog

import "slices"

// Category identifiers. This set is fixed; the scaffold generator rejects
// anything else.
const (
	CategoryDialogs    = "dialogs"
	CategoryFileUpload = "file-upload"
	CategoryFormLayout = "form-layout"
	CategoryGridList   = "grid-list"
	CategoryLogin      = "login"
	CategoryStats      = "stats"
	CategorySidebar    = "sidebar"
	CategoryAI         = "ai"
	CategoryTables     = "tables"
)

// DefaultCategory is used by the scaffold generator when none is given.
const DefaultCategory = CategoryLogin

// DefaultCategories returns the category descriptors without counts, in
// authoring order. Each call returns a fresh slice.
func DefaultCategories() []CategoryRecord {
	return []CategoryRecord{
		{ID: CategoryDialogs, Name: "Dialogs", ThumbnailClasses: "w-9/12"},
		{ID: CategoryFileUpload, Name: "File Upload"},
		{ID: CategoryFormLayout, Name: "Form Layout", ThumbnailClasses: "w-8/12"},
		{ID: CategoryGridList, Name: "Grid List"},
		{ID: CategoryLogin, Name: "Login & Signup", ThumbnailClasses: "w-8/12"},
		{ID: CategoryStats, Name: "Stats"},
		{ID: CategorySidebar, Name: "Sidebar", ThumbnailClasses: "w-10/12 self-end"},
		{ID: CategoryAI, Name: "AI Components", ThumbnailClasses: "w-10/12"},
		{ID: CategoryTables, Name: "Tables", ThumbnailClasses: "w-11/12 justify-self-end"},
	}
}

// CategoryIDs returns the valid category identifiers in authoring order.
func CategoryIDs() []string {
	cats := DefaultCategories()
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

// IsValidCategory reports whether id names a known category.
func IsValidCategory(id string) bool {
	return slices.Contains(CategoryIDs(), id)
}

var categoryIcons = map[string]string{
	CategoryDialogs:    "message",
	CategoryFileUpload: "upload",
	CategoryFormLayout: "forms",
	CategoryGridList:   "layout-grid",
	CategoryLogin:      "login",
	CategoryStats:      "chart-bar",
	CategorySidebar:    "layout-sidebar",
	CategoryAI:         "sparkles",
	CategoryTables:     "table",
}

var categoryDescriptions = map[string]string{
	CategoryDialogs:    "Modal dialogs, confirmations and command palettes.",
	CategoryFileUpload: "Drag-and-drop zones, upload lists and progress states.",
	CategoryFormLayout: "Multi-column forms, settings panels and input groups.",
	CategoryGridList:   "Card grids and list layouts for collections.",
	CategoryLogin:      "Sign-in, sign-up and account recovery screens.",
	CategoryStats:      "KPI cards, metric tiles and trend summaries.",
	CategorySidebar:    "Application sidebars and navigation rails.",
	CategoryAI:         "Chat inputs, prompt boxes and assistant layouts.",
	CategoryTables:     "Data tables with sorting, selection and pagination.",
}

// Icon returns the icon name for a category, or "layout-grid" when unknown.
func Icon(id string) string {
	if icon, ok := categoryIcons[id]; ok {
		return icon
	}
	return "layout-grid"
}

// Description returns the presentation blurb for a category.
func Description(id string) string {
	return categoryDescriptions[id]
}
