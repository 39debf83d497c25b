// Package httpclient provides the HTTP transport used by the viking API
// client: base-URL resolution, query encoding, default headers, a pluggable
// request signer, and a pluggable response classifier.
//
// The signer hook is where OAuth signing plugs in. It runs before the query
// string is attached so signature base strings can cover the query
// parameters, as OAuth 1.0a requires.
//
// The classifier hook inspects every completed response and may convert it
// into a typed error. With no classifier configured, any response that
// arrives is returned as-is regardless of status code.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://mobilevikings.com:443/api/2.0",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/sim_balance.json",
//	})
//
// Retry and rate limiting are off unless configured; see the resilience
// package.
package httpclient
