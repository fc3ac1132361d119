package relevance

import (
	"sort"
	"strings"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// expansionTable maps a trigger term to the extra terms added to the match
// set when the trigger appears in the query. Triggers are matched
// case-insensitively as substrings.
var expansionTable = map[string][]string{
	"owner":     {"authorization", "allow.owner()", "identityClaim"},
	"auth":      {"authentication", "defineAuth", "loginWith"},
	"login":     {"authentication", "signIn", "loginWith"},
	"model":     {"schema", "defineData", "a.model"},
	"database":  {"data", "defineData", "schema"},
	"storage":   {"defineStorage", "file upload", "access levels"},
	"upload":    {"defineStorage", "storage"},
	"deploy":    {"hosting", "branch deployment", "amplify console"},
	"function":  {"defineFunction", "lambda"},
	"timestamp": {"createdAt", "updatedAt"},
	"createdat": {"timestamp", "automatic fields"},
	"updatedat": {"timestamp", "automatic fields"},
	"import":    {"module resolution", "tsconfig paths"},
}

// intentExpansions adds per-intent terms regardless of which triggers fired.
var intentExpansions = map[types.Intent][]string{
	types.IntentSetup:      {"getting started", "installation"},
	types.IntentAuth:       {"authentication"},
	types.IntentData:       {"data modeling"},
	types.IntentError:      {"troubleshooting"},
	types.IntentTimestamps: {"createdAt", "updatedAt"},
	types.IntentImports:    {"imports"},
}

// ExpandQuery returns the match-term set for a query: the query's own tokens,
// plus the fixed additions for every trigger term present, plus the
// intent-level additions. The result is deduplicated case-insensitively and
// never drops a token the caller typed.
func ExpandQuery(query string, intent types.Intent) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	seen := make(map[string]bool)
	terms := make([]string, 0, 8)
	add := func(term string) {
		key := strings.ToLower(term)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		terms = append(terms, term)
	}

	for _, token := range strings.Fields(q) {
		add(token)
	}
	// Map iteration order is randomized; sort the triggers so the expanded
	// term list is deterministic for a given query.
	triggers := make([]string, 0, len(expansionTable))
	for trigger := range expansionTable {
		triggers = append(triggers, trigger)
	}
	sort.Strings(triggers)
	for _, trigger := range triggers {
		if !strings.Contains(q, trigger) {
			continue
		}
		for _, term := range expansionTable[trigger] {
			add(term)
		}
	}
	for _, term := range intentExpansions[intent] {
		add(term)
	}
	return terms
}
