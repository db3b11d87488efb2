package twin

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	refreshExpiry = 30 * 24 * time.Hour
)

// tokenIssuer signs and validates HS256 tokens.
type tokenIssuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// sign creates a signed HMAC-SHA256 JWT of the given type for user.
func (ti *tokenIssuer) sign(user User, tokenType string) (string, error) {
	now := ti.now()
	expiry := ti.expiry
	if tokenType == tokenTypeRefresh {
		expiry = refreshExpiry
	}
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"type":  tokenType,
		"iss":   "finqa-twin",
		"iat":   now.Unix(),
		"exp":   now.Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// validate parses and validates a JWT token string. Expired tokens yield an
// error matching jwt.ErrTokenExpired.
func (ti *tokenIssuer) validate(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ti.secret, nil
	}, jwt.WithTimeFunc(ti.now))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
