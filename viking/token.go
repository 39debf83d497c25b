package viking

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gomodule/oauth1/oauth"
)

// Token is an OAuth credential pair: either a temporary request token or a
// long-lived access token.
type Token struct {
	// Key is the token value (oauth_token).
	Key string
	// Secret is the token secret (oauth_token_secret).
	Secret string
	// Verifier is the one-time code proving the user approved access.
	// Only meaningful on request tokens.
	Verifier string
	// Extra holds any additional parameters the server returned alongside
	// the token, such as oauth_callback_confirmed.
	Extra url.Values
}

// NewToken creates a token from a known key and secret, e.g. one restored
// from session or database storage.
func NewToken(key, secret string) *Token {
	return &Token{Key: key, Secret: secret}
}

// ParseToken parses a token response body. The body is the conventional
// form-encoded OAuth 1.0a token response and must contain oauth_token and
// oauth_token_secret; all other parameters are preserved in Extra.
func ParseToken(body string) (*Token, error) {
	values, err := url.ParseQuery(body)
	if err != nil {
		return nil, fmt.Errorf("malformed token response: %w", err)
	}

	key := values.Get("oauth_token")
	secret := values.Get("oauth_token_secret")
	if key == "" || secret == "" {
		return nil, errors.New("token response missing oauth_token or oauth_token_secret")
	}

	values.Del("oauth_token")
	values.Del("oauth_token_secret")
	if len(values) == 0 {
		values = nil
	}

	return &Token{Key: key, Secret: secret, Extra: values}, nil
}

// withVerifier returns a copy of the token with the verifier attached.
func (t *Token) withVerifier(verifier string) *Token {
	clone := *t
	clone.Verifier = verifier
	return &clone
}

// credentials converts the token for the signing delegate.
func (t *Token) credentials() *oauth.Credentials {
	return &oauth.Credentials{Token: t.Key, Secret: t.Secret}
}
