// Package authctx defines the auth-context shape forwarded by the gateway:
// a variant record whose discriminant selects between string roles and a
// bitwise role mask, with an optional nested user session.
package authctx

// Kind discriminates the two auth-context shapes.
type Kind int

// Auth-context kinds.
const (
	// KindStringRoles marks contexts whose roles are a list of names.
	KindStringRoles Kind = 0

	// KindBitwiseRoles marks contexts whose roles are a numeric bitmask.
	KindBitwiseRoles Kind = 1
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindStringRoles:
		return "string-roles"
	case KindBitwiseRoles:
		return "bitwise-roles"
	default:
		return "unknown"
	}
}

// Context is the decoded auth context attached to a request. It is created
// fresh per request and never mutated after attachment.
type Context struct {
	// Kind selects the string-roles or bitwise-roles shape.
	Kind Kind `json:"t"`

	// ClientID identifies the calling client.
	ClientID string `json:"c"`

	// AuthenticatedSecret indicates the client authenticated with a secret.
	AuthenticatedSecret bool `json:"a"`

	// Roles holds the client roles, as names or as a bitmask per Kind.
	Roles Roles `json:"r"`

	// IP is the originating address reported by the gateway.
	IP string `json:"ip"`

	// Debug is an optional gateway debug flag.
	Debug bool `json:"d,omitempty"`

	// User is the nested user session, when a user is bound to the request.
	User *UserSession `json:"u,omitempty"`
}

// UserSession describes the authenticated user bound to a request.
type UserSession struct {
	// SessionID identifies the user session.
	SessionID string `json:"sid"`

	// UserID identifies the user.
	UserID string `json:"id"`

	// Roles holds the user roles, shaped per the enclosing context's Kind.
	Roles Roles `json:"r"`

	// Scopes holds the granted OAuth scopes, when present.
	Scopes *Roles `json:"s,omitempty"`
}

// HasRole checks if the client has a specific named role.
func (c *Context) HasRole(role string) bool {
	return c.Roles.Has(role)
}

// HasRoleBit checks if the client role mask has the given bits set.
func (c *Context) HasRoleBit(mask uint64) bool {
	return c.Roles.HasBit(mask)
}

// UserID returns the bound user's ID, or "" when no user session exists.
func (c *Context) UserID() string {
	if c.User == nil {
		return ""
	}
	return c.User.UserID
}
