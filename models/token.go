package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for the auth flow.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. SignedString holds the compact serialized form
// ready to be transmitted in HTTP headers. ProfileID is a cached, parsed
// copy of the "sub" claim converted to int64.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ProfileID is the owner identifier extracted from the "sub" claim.
	ProfileID int64 `json:"-"`
}

// GetProfileID extracts the profile identifier from the token's "sub"
// (subject) claim and parses it as a base-10 int64.
func (t *Token) GetProfileID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting profile id from token: %w", err)
	}

	profileID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting profile id from token to int64: %w", err)
	}

	return profileID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
