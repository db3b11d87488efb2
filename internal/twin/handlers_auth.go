package twin

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/models"
)

func (t *Twin) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if !t.decode(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		t.catalog.Write(w, errMissingParameters)
		return
	}

	user, ok := t.store.UserByEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)) != nil {
		t.catalog.Write(w, errWrongCredentials)
		return
	}

	access, err := t.tokens.sign(user, tokenTypeAccess)
	if err != nil {
		t.logger.Error().Err(err).Msg("Failed to sign access token")
		writeInternalError(w, err)
		return
	}
	refresh, err := t.tokens.sign(user, tokenTypeRefresh)
	if err != nil {
		t.logger.Error().Err(err).Msg("Failed to sign refresh token")
		writeInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, models.Login{
		Name:    user.Name,
		Email:   user.Email,
		Access:  access,
		Refresh: refresh,
	})
}

func (t *Twin) handleMe(w http.ResponseWriter, r *http.Request) {
	uc := common.UserContextFromContext(r.Context())
	WriteJSON(w, http.StatusOK, models.User{ID: uc.UserID, Name: uc.Name, Email: uc.Email})
}
