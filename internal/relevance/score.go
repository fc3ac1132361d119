package relevance

import (
	"fmt"
	"strings"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// Boost weights. Chosen so a category-affinity hit outweighs a couple of
// stray term matches but never swamps the store's whole-phrase base score.
const (
	categoryAffinityBoost = 5.0
	bestPracticesBoost    = 3.0
	termMatchBoost        = 2.0

	// HighlightThreshold marks results whose boost alone signals strong
	// relevance. Display-only; ordering ignores it.
	HighlightThreshold = 8.0
)

// intentCategoryAffinity maps an intent to the category whose documents get
// the affinity boost.
var intentCategoryAffinity = map[types.Intent]types.Category{
	types.IntentSetup:      types.CategoryGettingStarted,
	types.IntentAuth:       types.CategoryBackend,
	types.IntentData:       types.CategoryBackend,
	types.IntentError:      types.CategoryGuides,
	types.IntentTimestamps: types.CategoryReference,
	types.IntentImports:    types.CategoryFrontend,
}

// ScoreDocument computes the additive boost for a document given the
// caller's intent and the expanded match terms. The returned reasons name
// each contribution. Pure function: identical inputs always produce the
// identical boost.
func ScoreDocument(doc *types.Document, intent types.Intent, terms []string) (float64, []string) {
	boost := 0.0
	reasons := make([]string, 0, 3)

	if affinity, ok := intentCategoryAffinity[intent]; ok && doc.Category == affinity {
		boost += categoryAffinityBoost
		reasons = append(reasons, fmt.Sprintf("category %s fits %s queries", doc.Category, intent))
	}

	if isBestPractices(doc) {
		boost += bestPracticesBoost
		reasons = append(reasons, "best practices guide")
	}

	if n := countMatchedTerms(doc, terms); n > 0 {
		boost += termMatchBoost * float64(n)
		reasons = append(reasons, fmt.Sprintf("matches %d search terms", n))
	}

	return boost, reasons
}

// isBestPractices flags documents presenting curated guidance.
func isBestPractices(doc *types.Document) bool {
	title := strings.ToLower(doc.Title)
	return strings.Contains(title, "best practice") ||
		strings.Contains(strings.ToLower(doc.URL), "best-practice")
}

// countMatchedTerms counts how many of the expanded terms appear in the
// document's title or content (case-insensitive substring). Each distinct
// term counts once.
func countMatchedTerms(doc *types.Document, terms []string) int {
	title := strings.ToLower(doc.Title)
	content := strings.ToLower(doc.Content)
	n := 0
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		if strings.Contains(title, t) || strings.Contains(content, t) {
			n++
		}
	}
	return n
}
