package viking

import (
	"strings"

	"github.com/mobilevikings/viking-go/httpclient"
)

// realm identifying the Mobile Vikings API in 401 challenges.
const oauthRealm = "Mobile Vikings"

// rule matches one known OAuth failure response.
type rule struct {
	code  ErrorCode
	match func(resp *httpclient.Response, lowerBody string) bool
}

// classificationRules is evaluated top to bottom; the first match wins.
// The order is part of the contract.
var classificationRules = []rule{
	{ErrCodeInvalidConsumer, bodyContains(400, "invalid consumer")},
	{ErrCodeRequestTokenExpired, bodyContains(400, "invalid request token")},
	{ErrCodeAccessDenied, bodyContains(400, "could not verify")},
	{ErrCodeInvalidVerifier, bodyContains(400, "invalid oauth verifier")},
	{ErrCodeAccessTokenExpired, expiredAccessToken},
}

// ClassifyResponse inspects a completed response and converts recognized
// OAuth failures into typed errors. Anything it does not recognize,
// including ordinary 404s and 500s, returns nil and passes through; the
// caller must branch on the response status for other failure modes.
func ClassifyResponse(resp *httpclient.Response) error {
	lowerBody := strings.ToLower(string(resp.Body))
	for _, r := range classificationRules {
		if r.match(resp, lowerBody) {
			return newResponseError(r.code, resp, strings.TrimSpace(string(resp.Body)))
		}
	}
	return nil
}

// bodyContains matches a status code plus a case-insensitive body substring.
func bodyContains(status int, needle string) func(*httpclient.Response, string) bool {
	return func(resp *httpclient.Response, lowerBody string) bool {
		return resp.StatusCode == status && strings.Contains(lowerBody, needle)
	}
}

// expiredAccessToken matches a 401 carrying an OAuth challenge for the
// Mobile Vikings realm.
func expiredAccessToken(resp *httpclient.Response, _ string) bool {
	if resp.StatusCode != 401 {
		return false
	}
	challenge := resp.Header("WWW-Authenticate")
	if challenge == "" {
		return false
	}
	scheme, params, err := parseChallenge(challenge)
	if err != nil {
		return false
	}
	return scheme == "OAuth" && params["realm"] == oauthRealm
}
