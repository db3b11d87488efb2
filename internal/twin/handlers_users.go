package twin

import (
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bobmcallan/finqa/internal/models"
)

const (
	minNameLength     = 3
	maxNameLength     = 80
	minPasswordLength = 6
	bcryptCost        = bcrypt.MinCost
)

var (
	userNamePattern = regexp.MustCompile(`^\S+$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// validName reports whether name has between 3 and 80 characters.
func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= minNameLength && n <= maxNameLength
}

func (t *Twin) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	var req models.UserPayload
	if !t.decode(w, r, &req) {
		return
	}

	switch {
	case req.Name == "" || req.Email == "" || req.Password == "":
		t.catalog.Write(w, errMissingUserParameters)
		return
	case !validName(req.Name) || !userNamePattern.MatchString(req.Name):
		t.catalog.Write(w, errInvalidUserName)
		return
	case !emailPattern.MatchString(req.Email):
		t.catalog.Write(w, errInvalidUserEmail)
		return
	case utf8.RuneCountInString(req.Password) < minPasswordLength:
		t.catalog.Write(w, errInvalidUserPassword)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		t.logger.Error().Err(err).Msg("Failed to hash password")
		writeInternalError(w, err)
		return
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    t.now(),
	}
	if err := t.store.CreateUser(user); err != nil {
		if errors.Is(err, ErrEmailExists) {
			t.catalog.Write(w, errEmailAlreadyExists)
			return
		}
		t.logger.Error().Err(err).Msg("Failed to create user")
		writeInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, userView(user))
}

func (t *Twin) handleUserList(w http.ResponseWriter, r *http.Request) {
	users := t.store.Users()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}
	WriteJSON(w, http.StatusOK, out)
}
