package relevance

import (
	"strings"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// intentRule maps an intent to the keywords that signal it. Rules are
// evaluated in declaration order; the first rule with any keyword present in
// the query wins, so earlier intents take priority over later ones.
type intentRule struct {
	intent   types.Intent
	keywords []string
}

var intentRules = []intentRule{
	// "create a"/"create new" rather than bare "create" so that
	// "createdAt" queries fall through to the timestamps rule.
	{types.IntentSetup, []string{
		"create a", "create new", "creating", "init", "new project",
		"scaffold", "set up", "setup", "getting started", "install",
	}},
	{types.IntentAuth, []string{
		"own", "permission", "authoriz", "auth", "login", "sign in",
		"signin", "sign up", "cognito", "user pool",
	}},
	{types.IntentData, []string{
		"model", "schema", "database", "query", "mutation", "graphql",
		"dynamodb", "crud", "record",
	}},
	{types.IntentError, []string{
		"error", "fail", "exception", "not working", "broken", "denied",
		"unauthorized", "troubleshoot",
	}},
	{types.IntentTimestamps, []string{
		"createdat", "updatedat", "timestamp", "date field",
	}},
	{types.IntentImports, []string{
		"import", "require", "module not found", "cannot find module",
	}},
}

// ClassifyIntent scans the lower-cased query for the keyword sets above and
// returns the first matching intent. A query matching nothing, or an empty
// query, classifies as general.
func ClassifyIntent(query string) types.Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return types.IntentGeneral
	}
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(q, keyword) {
				return rule.intent
			}
		}
	}
	return types.IntentGeneral
}
