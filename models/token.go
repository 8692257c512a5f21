package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified identity attached to an authenticated request.
//
// It is decoded straight from the bearer token's claims: the role it carries
// is the role at token-issuance time, not necessarily the current one in
// storage. That staleness window (until token expiry) is an accepted
// tradeoff; deployments that need immediate demotion set AUTH_REVERIFY_ROLE.
type Identity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType Role   `json:"userType"`
}

// Claims is the JWT claim set issued by the auth service. It embeds the
// user's identity alongside the registered claims (iss, sub, iat, exp).
type Claims struct {
	UserID   int64  `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType Role   `json:"userType"`

	jwt.RegisteredClaims
}

// Identity converts the claim set into the [Identity] record handlers work with.
func (c *Claims) Identity() Identity {
	return Identity{
		ID:       c.UserID,
		Name:     c.Name,
		Email:    c.Email,
		UserType: c.UserType,
	}
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Claims is the decoded claim set. Populated on parse and on issue.
	Claims *Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
