package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/finqa/internal/contracts"
	"github.com/bobmcallan/finqa/internal/models"
	"github.com/bobmcallan/finqa/tests/common"
)

// --- Login ---

func TestAuthLogin_Valid(t *testing.T) {
	env := common.NewEnv(t)
	if env == nil {
		return
	}
	defer env.Cleanup()

	user, err := env.Fixtures().User("valid")
	require.NoError(t, err)

	resp, err := env.Client().Auth().Login(env.Context(), user.Credentials())
	require.NoError(t, err)
	common.AssertContract(t, resp, http.StatusCreated, contracts.Login)

	var login models.Login
	require.NoError(t, resp.JSON(&login))
	assert.Equal(t, user.Name, login.Name)
	assert.Equal(t, user.Email, login.Email)
	assert.NotEmpty(t, login.Access)
	assert.NotEmpty(t, login.Refresh)
}

func TestAuthLogin_WrongCredentials(t *testing.T) {
	env := common.NewEnv(t)
	if env == nil {
		return
	}
	defer env.Cleanup()

	for _, profile := range []string{"invalid", "incorrect_password"} {
		t.Run(profile, func(t *testing.T) {
			user, err := env.Fixtures().User(profile)
			require.NoError(t, err)

			resp, err := env.Client().Auth().Login(env.Context(), user.Credentials())
			require.NoError(t, err)
			env.AssertAPIError(t, resp, "wrong_credentials")
		})
	}
}

func TestAuthLogin_MissingParameters(t *testing.T) {
	env := common.NewEnv(t)
	if env == nil {
		return
	}
	defer env.Cleanup()

	user, err := env.Fixtures().User("valid")
	require.NoError(t, err)

	tests := map[string]models.Credentials{
		"without_email":    {Password: user.Password},
		"without_password": {Email: user.Email},
		"empty":            {},
	}
	for name, creds := range tests {
		t.Run(name, func(t *testing.T) {
			resp, err := env.Client().Auth().Login(env.Context(), creds)
			require.NoError(t, err)
			env.AssertAPIError(t, resp, "missing_parameters")
		})
	}
}

// --- Me ---

func TestAuthMe_Valid(t *testing.T) {
	env := common.NewEnv(t)
	if env == nil {
		return
	}
	defer env.Cleanup()

	user, err := env.Fixtures().User("valid")
	require.NoError(t, err)

	resp, err := env.Client().Auth().Me(env.Context(), env.Token("valid"))
	require.NoError(t, err)
	common.AssertContract(t, resp, http.StatusOK, contracts.User)

	var me models.User
	require.NoError(t, resp.JSON(&me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, user.Email, me.Email)
}

func TestAuthMe_TokenErrors(t *testing.T) {
	env := common.NewEnv(t)
	if env == nil {
		return
	}
	defer env.Cleanup()

	for profile, want := range tokenCases {
		t.Run(profile, func(t *testing.T) {
			resp, err := env.Client().Auth().Me(env.Context(), tokenValue(t, env, profile))
			require.NoError(t, err)
			env.AssertTokenError(t, resp, want)
		})
	}
}

func TestAuthMe_RawTokenWithoutScheme(t *testing.T) {
	env := common.NewEnv(t)
	if env == nil {
		return
	}
	defer env.Cleanup()

	user, err := env.Fixtures().User("valid")
	require.NoError(t, err)

	raw, err := env.App.Tokens.Obtain(env.Context(), user.Credentials())
	require.NoError(t, err)

	resp, err := env.Client().Auth().Me(env.Context(), raw)
	require.NoError(t, err)
	env.AssertTokenError(t, resp, "invalid_token_type")
}
