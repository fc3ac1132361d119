package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

func scoreDoc(title, content string, category types.Category) *types.Document {
	return &types.Document{
		URL:      "https://docs.example.com/x",
		Title:    title,
		Content:  content,
		Category: category,
	}
}

func TestScoreCategoryAffinity(t *testing.T) {
	doc := scoreDoc("Quickstart", "", types.CategoryGettingStarted)

	boost, reasons := ScoreDocument(doc, types.IntentSetup, nil)
	assert.Equal(t, categoryAffinityBoost, boost)
	assert.Len(t, reasons, 1)

	boost, _ = ScoreDocument(doc, types.IntentData, nil)
	assert.Zero(t, boost)
}

func TestScoreBestPractices(t *testing.T) {
	doc := scoreDoc("Data Modeling Best Practices", "", types.CategoryGuides)

	boost, reasons := ScoreDocument(doc, types.IntentGeneral, nil)
	assert.Equal(t, bestPracticesBoost, boost)
	assert.Contains(t, reasons, "best practices guide")
}

func TestScoreTermMatches(t *testing.T) {
	doc := scoreDoc("Auth", "Configure defineAuth with loginWith email.", types.CategoryGeneral)

	boost, _ := ScoreDocument(doc, types.IntentGeneral, []string{"defineAuth"})
	assert.Equal(t, termMatchBoost, boost)

	boost, _ = ScoreDocument(doc, types.IntentGeneral, []string{"defineAuth", "loginWith"})
	assert.Equal(t, 2*termMatchBoost, boost)
}

func TestScoreMonotonicInMatches(t *testing.T) {
	// Adding a matching term never lowers the score.
	doc := scoreDoc("Storage", "defineStorage access levels upload", types.CategoryBackend)

	terms := []string{}
	prev := 0.0
	for _, term := range []string{"defineStorage", "access levels", "upload", "nomatch"} {
		terms = append(terms, term)
		boost, _ := ScoreDocument(doc, types.IntentGeneral, terms)
		assert.GreaterOrEqual(t, boost, prev)
		prev = boost
	}
}

func TestScoreAdditive(t *testing.T) {
	doc := scoreDoc("Auth Best Practices", "defineAuth rules", types.CategoryBackend)

	boost, reasons := ScoreDocument(doc, types.IntentAuth, []string{"defineAuth"})
	assert.Equal(t, categoryAffinityBoost+bestPracticesBoost+termMatchBoost, boost)
	assert.Len(t, reasons, 3)
}

func TestScoreDeterministic(t *testing.T) {
	doc := scoreDoc("Auth", "defineAuth loginWith", types.CategoryBackend)
	terms := []string{"defineAuth", "loginWith", "cognito"}

	b1, r1 := ScoreDocument(doc, types.IntentAuth, terms)
	b2, r2 := ScoreDocument(doc, types.IntentAuth, terms)
	assert.Equal(t, b1, b2)
	assert.Equal(t, r1, r2)
}

func TestScoreEmptyInputs(t *testing.T) {
	doc := scoreDoc("Anything", "content", types.CategoryGeneral)

	boost, reasons := ScoreDocument(doc, types.IntentGeneral, nil)
	assert.Zero(t, boost)
	assert.Empty(t, reasons)
}
