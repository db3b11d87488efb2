package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/finqa/tests/common"
)

// tokenCases maps a tokens fixture profile, or "missing" for no header, to
// the default_errors entry the API answers with.
var tokenCases = map[string]string{
	"missing":       "missing_bearer_token",
	"expired":       "expired_bearer_token",
	"invalid_value": "invalid_token_format",
	"invalid_type":  "invalid_token_type",
}

// tokenValue returns the Authorization header for a tokenCases key.
func tokenValue(t testing.TB, env *common.Env, profile string) string {
	t.Helper()
	if profile == "missing" {
		return ""
	}
	tok, err := env.Fixtures().Token(profile)
	require.NoError(t, err)
	return tok.Value
}
