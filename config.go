package auth

const (
	// DefaultSigningMethod signs with an RSA key pair so the verifying side
	// only ever needs the public key.
	DefaultSigningMethod = "RS256"
	// DefaultAccessTokenTTL is the access token lifetime in minutes.
	DefaultAccessTokenTTL = 15
	// DefaultRefreshTokenTTL is the refresh token lifetime in days.
	DefaultRefreshTokenTTL = 30
	// DefaultTokenLookup checks the bearer header first, then the cookie.
	DefaultTokenLookup = "header:Authorization,cookie:access_token"
)

// SimpleConfig is an immutable value implementation of Config. Zero fields
// fall back to defaults, so tests can build one inline with only the fields
// they care about.
type SimpleConfig struct {
	SigningMethod     string
	Issuer            string
	Audience          []string
	AccessTokenTTL    int // minutes
	RefreshTokenTTL   int // days
	TokenLookup       string
	AuthScheme        string
	ContextKey        string
	AccessCookieName  string
	RefreshCookieName string
}

var _ Config = SimpleConfig{}

func (c SimpleConfig) GetSigningMethod() string {
	if c.SigningMethod == "" {
		return DefaultSigningMethod
	}
	return c.SigningMethod
}

func (c SimpleConfig) GetIssuer() string {
	return c.Issuer
}

func (c SimpleConfig) GetAudience() []string {
	return c.Audience
}

// GetAccessTokenTTL returns the access token lifetime in minutes.
func (c SimpleConfig) GetAccessTokenTTL() int {
	if c.AccessTokenTTL <= 0 {
		return DefaultAccessTokenTTL
	}
	return c.AccessTokenTTL
}

// GetRefreshTokenTTL returns the refresh token lifetime in days.
func (c SimpleConfig) GetRefreshTokenTTL() int {
	if c.RefreshTokenTTL <= 0 {
		return DefaultRefreshTokenTTL
	}
	return c.RefreshTokenTTL
}

func (c SimpleConfig) GetTokenLookup() string {
	if c.TokenLookup == "" {
		return DefaultTokenLookup
	}
	return c.TokenLookup
}

func (c SimpleConfig) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return "Bearer"
	}
	return c.AuthScheme
}

func (c SimpleConfig) GetContextKey() string {
	if c.ContextKey == "" {
		return "user"
	}
	return c.ContextKey
}

func (c SimpleConfig) GetAccessCookieName() string {
	if c.AccessCookieName == "" {
		return "access_token"
	}
	return c.AccessCookieName
}

func (c SimpleConfig) GetRefreshCookieName() string {
	if c.RefreshCookieName == "" {
		return "refresh_token"
	}
	return c.RefreshCookieName
}
