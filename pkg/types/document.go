package types

import "time"

// Category classifies a documentation page by the section of the docs site
// it was scraped from. Assigned once at scrape time; never mutated by search.
type Category string

const (
	CategoryGettingStarted Category = "getting-started"
	CategoryBackend        Category = "backend"
	CategoryFrontend       Category = "frontend"
	CategoryDeployment     Category = "deployment"
	CategoryReference      Category = "reference"
	CategoryGuides         Category = "guides"
	CategoryGeneral        Category = "general"
)

// AllCategories lists every known category in display order.
var AllCategories = []Category{
	CategoryGettingStarted,
	CategoryBackend,
	CategoryFrontend,
	CategoryDeployment,
	CategoryReference,
	CategoryGuides,
	CategoryGeneral,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryGettingStarted:
		return "Getting Started"
	case CategoryBackend:
		return "Backend Development"
	case CategoryFrontend:
		return "Frontend & UI"
	case CategoryDeployment:
		return "Deployment & Hosting"
	case CategoryReference:
		return "API Reference"
	case CategoryGuides:
		return "Guides"
	case CategoryGeneral:
		return "General Documentation"
	default:
		return string(c)
	}
}

// Document represents a single scraped documentation page. URL is the unique
// key; re-scraping the same URL updates the row in place.
type Document struct {
	ID              int64
	URL             string
	Title           string
	Content         string // Plain text extracted from the page
	MarkdownContent string // Markdown rendering of the main content region
	Category        Category
	LastScraped     time.Time
}

// Stats summarizes the state of the document index.
type Stats struct {
	TotalDocuments int
	ByCategory     map[Category]int
	LastUpdate     time.Time
}
