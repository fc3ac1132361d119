package relevance

import (
	"sort"
	"strings"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// antiPatternRule describes one known-incorrect usage pattern. A rule fires
// when any trigger appears in the query, the caller's current file path, or
// the caller's last error message.
type antiPatternRule struct {
	name        string
	severity    types.Severity
	triggers    []string
	message     string
	alternative string
}

var antiPatternRules = []antiPatternRule{
	{
		name:     "template-cloning",
		severity: types.SeverityHigh,
		triggers: []string{
			"clone template", "template clone", "clone the template",
			"clone a template", "clone starter", "starter template",
			"copy template",
		},
		message:     "Cloning a starter template pins you to stale dependency versions and leftover example code.",
		alternative: "Scaffold fresh instead: npx create-next-app@14.2.10 my-app --typescript --app --tailwind --eslint, then add the Amplify backend packages.",
	},
	{
		name:     "deprecated-owner-field",
		severity: types.SeverityHigh,
		triggers: []string{
			"ownerfield", ".ownerfield(", "identityclaim",
		},
		message:     "The .ownerField().identityClaim() chain is Gen 1 syntax and no longer exists.",
		alternative: "Use allow.owner() in the model's authorization rules; the owner field is managed for you.",
	},
	{
		name:     "manual-timestamps",
		severity: types.SeverityMedium,
		triggers: []string{
			"manual timestamp", "set createdat", "set updatedat",
			"update createdat", "update updatedat", "managing timestamps",
			"createdat: new date", "updatedat: new date",
		},
		message:     "createdAt and updatedAt are maintained automatically on every model.",
		alternative: "Remove manual timestamp assignments; read the generated fields instead of writing them.",
	},
	{
		name:     "extension-qualified-import",
		severity: types.SeverityLow,
		triggers: []string{
			".ts'", `.ts"`, ".tsx'", `.tsx"`,
		},
		message:     "Imports should not name the .ts/.tsx extension; the bundler resolves it.",
		alternative: "Import from './auth/resource' rather than './auth/resource.ts'.",
	},
}

// DetectAntiPatterns evaluates the rule list against the query and optional
// caller context. Matching rules each yield one warning, ordered by severity
// (high first) with ties in rule declaration order. No match returns an
// empty, non-nil slice.
func DetectAntiPatterns(query string, sctx *types.SearchContext) []types.Warning {
	haystacks := []string{strings.ToLower(query)}
	if sctx != nil {
		if sctx.CurrentFile != "" {
			haystacks = append(haystacks, strings.ToLower(sctx.CurrentFile))
		}
		if sctx.LastError != "" {
			haystacks = append(haystacks, strings.ToLower(sctx.LastError))
		}
	}

	warnings := make([]types.Warning, 0)
	for _, rule := range antiPatternRules {
		if !ruleMatches(rule, haystacks) {
			continue
		}
		warnings = append(warnings, types.Warning{
			Severity:    rule.severity,
			Message:     rule.message,
			Alternative: rule.alternative,
		})
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Severity.Rank() < warnings[j].Severity.Rank()
	})
	return warnings
}

func ruleMatches(rule antiPatternRule, haystacks []string) bool {
	for _, h := range haystacks {
		for _, trigger := range rule.triggers {
			if strings.Contains(h, trigger) {
				return true
			}
		}
	}
	return false
}
