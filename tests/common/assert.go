package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/finqa/internal/clients/finances"
	"github.com/bobmcallan/finqa/internal/contracts"
)

// AssertContract checks status and validates the body against schema.
func AssertContract(t testing.TB, resp *finances.Response, status int, schema contracts.Schema) {
	t.Helper()
	require.Equal(t, status, resp.StatusCode, "%s %s: %s", resp.Method, resp.Path, resp.String())
	res := contracts.Validate(schema, resp.Body())
	assert.True(t, res.OK, "%s %s does not satisfy %s:\n%s\nbody: %s", resp.Method, resp.Path, schema, res, resp.String())
}

// AssertAPIError checks a {code,message,details} failure against the
// default_errors fixture called name.
func (e *Env) AssertAPIError(t testing.TB, resp *finances.Response, name string) {
	t.Helper()
	exp, err := e.App.Fixtures.ExpectedError(name)
	require.NoError(t, err)

	AssertContract(t, resp, exp.Status, contracts.Error)
	got, err := resp.APIError()
	require.NoError(t, err)
	assert.Equal(t, exp.APIError(), *got)
}

// AssertTokenError checks a {msg} failure against the default_errors fixture
// called name.
func (e *Env) AssertTokenError(t testing.TB, resp *finances.Response, name string) {
	t.Helper()
	exp, err := e.App.Fixtures.ExpectedError(name)
	require.NoError(t, err)

	AssertContract(t, resp, exp.Status, contracts.TokenError)
	got, err := resp.TokenError()
	require.NoError(t, err)
	assert.Equal(t, exp.TokenError(), *got)
}
