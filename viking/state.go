package viking

import (
	"net/http"
	"net/url"

	"github.com/gomodule/oauth1/oauth"

	"github.com/mobilevikings/viking-go/httpclient"
)

// authPhase names the client's position in the OAuth flow.
type authPhase int

const (
	// phaseUnauthenticated: no token; only consumer-signed requests.
	phaseUnauthenticated authPhase = iota
	// phaseRequestToken: a request token is active.
	phaseRequestToken
	// phaseAccessToken: an access token is active.
	phaseAccessToken
)

// String returns the phase name.
func (p authPhase) String() string {
	switch p {
	case phaseRequestToken:
		return "request_token"
	case phaseAccessToken:
		return "access_token"
	default:
		return "unauthenticated"
	}
}

// authState is an immutable snapshot of the client's authentication state:
// the active token (nil when unauthenticated) and a transport signing with
// it. Every token transition replaces the whole snapshot; nothing signs
// with half-updated credentials.
type authState struct {
	phase authPhase
	token *Token
	http  *httpclient.Client
}

// newAuthState builds the snapshot for a phase, deriving a transport that
// signs with (consumer, token).
func newAuthState(phase authPhase, token *Token, delegate *oauth.Client, transport *httpclient.Client) authState {
	signer := oauthSigner{delegate: delegate}
	if token != nil {
		signer.token = token.credentials()
	}
	return authState{
		phase: phase,
		token: token,
		http:  transport.WithSigner(signer),
	}
}

// oauthSigner adapts the OAuth signing delegate to the transport's Signer
// interface. A nil token signs with the consumer credentials alone, which
// is what the request-token fetch needs.
type oauthSigner struct {
	delegate *oauth.Client
	token    *oauth.Credentials
}

// Authorize implements httpclient.Signer. The signature base string covers
// the query values, which the transport attaches afterwards.
func (s oauthSigner) Authorize(req *http.Request, params url.Values) error {
	return s.delegate.SetAuthorizationHeader(req.Header, s.token, req.Method, req.URL, params)
}
