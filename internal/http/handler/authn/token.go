package authn

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrMalformedToken signals an access token whose payload segment could
// not be decoded. It always aborts the login attempt.
var ErrMalformedToken = errors.New("malformed access token")

// Claims are the fields extracted from the provider access token. The
// token signature is deliberately not verified here: decoding only happens
// on tokens delivered through the provider's server-side exchange, never
// on user-supplied input.
type Claims struct {
	Subject           string
	PreferredUsername string
	RealmRoles        []string
	ClientRoles       []string
}

// MergedRoles returns the union of the client-scoped and realm-wide role
// claims, deduplicated, client roles first.
func (c *Claims) MergedRoles() []string {
	merged := make([]string, 0, len(c.ClientRoles)+len(c.RealmRoles))
	seen := make(map[string]struct{}, cap(merged))

	for _, roles := range [][]string{c.ClientRoles, c.RealmRoles} {
		for _, role := range roles {
			if _, exists := seen[role]; exists {
				continue
			}

			seen[role] = struct{}{}
			merged = append(merged, role)
		}
	}

	return merged
}

type realmAccess struct {
	Roles []string `json:"roles"`
}

type resourceAccess struct {
	Roles []string `json:"roles"`
}

type accessTokenClaims struct {
	jwt.RegisteredClaims
	PreferredUsername string                    `json:"preferred_username"`
	RealmAccess       *realmAccess              `json:"realm_access,omitempty"`
	ResourceAccess    map[string]resourceAccess `json:"resource_access,omitempty"`
}

// DecodeAccessToken extracts the claims from a raw provider access token.
// clientID selects which resource_access entry contributes client roles.
func DecodeAccessToken(raw string, clientID string) (*Claims, error) {
	var tokenClaims accessTokenClaims

	if _, _, err := jwt.NewParser().ParseUnverified(raw, &tokenClaims); err != nil {
		return nil, errors.Wrapf(ErrMalformedToken, "%v", err)
	}

	claims := &Claims{
		Subject:           tokenClaims.Subject,
		PreferredUsername: tokenClaims.PreferredUsername,
	}

	if tokenClaims.RealmAccess != nil {
		claims.RealmRoles = tokenClaims.RealmAccess.Roles
	}

	if access, exists := tokenClaims.ResourceAccess[clientID]; exists {
		claims.ClientRoles = access.Roles
	}

	return claims, nil
}
