package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// ErrNoAccount is returned when no account id can be resolved. Comment
// creation must not reach the API without one.
var ErrNoAccount = errors.New("no account id available")

// AccountContext carries the caller's account identity into API calls.
// It replaces any ambient session lookup: callers build one explicitly
// and pass it down.
type AccountContext struct {
	AccountID string
	Token     string
}

// ResolveAccount builds the account context from an explicit account id,
// falling back to the account claim embedded in the bearer token. The token
// is parsed without signature verification; verifying it is the API's job,
// the client only needs the claim value.
func ResolveAccount(accountID, token string) (AccountContext, error) {
	if accountID != "" {
		return AccountContext{AccountID: accountID, Token: token}, nil
	}

	if token == "" {
		return AccountContext{}, ErrNoAccount
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		log.Error().Err(err).Msg("failed to parse bearer token for account claim")
		return AccountContext{}, ErrNoAccount
	}

	if id, ok := claims["accountId"].(string); ok && id != "" {
		return AccountContext{AccountID: id, Token: token}, nil
	}

	log.Error().Msg("bearer token carries no accountId claim")
	return AccountContext{}, ErrNoAccount
}
