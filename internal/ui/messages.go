// Package ui provides the Bubble Tea TUI for the catalog browser.
package ui

import "github.com/abelbrown/catalog/internal/catalog"

// CatalogLoaded is sent when the fixtures have been loaded and joined.
type CatalogLoaded struct {
	Catalog *catalog.Catalog
	Err     error
}
