package scraper

import (
	"net/url"
	"strings"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// categoryPathRules map URL path fragments to categories, checked in order.
var categoryPathRules = []struct {
	fragment string
	category types.Category
}{
	{"/start/", types.CategoryGettingStarted},
	{"/deploy/", types.CategoryDeployment},
	{"/build-a-backend/", types.CategoryBackend},
	{"/build-ui/", types.CategoryFrontend},
	{"/reference/", types.CategoryReference},
	{"/guides/", types.CategoryGuides},
}

// CategorizeURL assigns a category from the URL path. Unrecognized paths,
// including unparseable URLs, fall back to the general category.
func CategorizeURL(rawURL string) types.Category {
	u, err := url.Parse(rawURL)
	if err != nil {
		return types.CategoryGeneral
	}
	path := strings.ToLower(u.Path)
	for _, rule := range categoryPathRules {
		if strings.Contains(path, rule.fragment) {
			return rule.category
		}
	}
	return types.CategoryGeneral
}
