package httpclient

import (
	"net/http"
	"net/url"
)

// Signer authorizes an outbound request, typically by setting the
// Authorization header.
//
// Authorize is called before the query string is attached to the request
// URL; params holds the query values that will be sent, so signature
// schemes that cover request parameters (OAuth 1.0a) can include them in
// the signature base string.
type Signer interface {
	Authorize(req *http.Request, params url.Values) error
}

// SignerFunc adapts a function to the Signer interface.
type SignerFunc func(req *http.Request, params url.Values) error

// Authorize implements Signer.
func (f SignerFunc) Authorize(req *http.Request, params url.Values) error {
	return f(req, params)
}
