package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  types.Intent
	}{
		{"create a new project", types.IntentSetup},
		{"how do I set up my app", types.IntentSetup},
		{"login with email", types.IntentAuth},
		{"owner based permissions", types.IntentAuth},
		{"define a data model", types.IntentData},
		{"graphql mutation syntax", types.IntentData},
		{"deployment keeps failing", types.IntentError},
		{"createdAt field missing", types.IntentTimestamps},
		{"cannot find module resource", types.IntentImports},
		{"hosting options", types.IntentGeneral},
		{"", types.IntentGeneral},
		{"   ", types.IntentGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyIntent(tt.query), "query %q", tt.query)
	}
}

func TestClassifyIntentPriorityOrder(t *testing.T) {
	// A query hitting both setup and auth keywords resolves to setup.
	assert.Equal(t, types.IntentSetup, ClassifyIntent("create an app with login"))
	assert.Equal(t, types.IntentSetup, ClassifyIntent("init cognito user pool"))

	// Auth beats data when both match.
	assert.Equal(t, types.IntentAuth, ClassifyIntent("authorization rules on my model"))
}

func TestClassifyIntentCaseInsensitive(t *testing.T) {
	assert.Equal(t, types.IntentAuth, ClassifyIntent("OWNER PERMISSIONS"))
}
