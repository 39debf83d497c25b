// Package viking is a client for the Mobile Vikings API.
//
// The API is protected with OAuth 1.0a: applications consume user data (a
// balance checker on a phone, say) without ever seeing the user's
// credentials. Signature generation is delegated to gomodule/oauth1; this
// package manages the token flow, builds the endpoint URLs, and converts
// the API's known OAuth failure responses into typed errors.
//
// # Registering your application
//
// Before you can call the API you need a consumer key and secret. Send a
// request to info@mobilevikings.com with the name of your application and a
// short description of its functionality.
//
// # Acquiring an access token
//
// OAuth authorizes by exchanging tokens. The application fetches a request
// token with a callback URL, redirects the user to an authorization page on
// the Mobile Vikings site, and, once the user grants access, exchanges the
// verified request token for an access token:
//
//	client, err := viking.New(viking.Config{
//	    ConsumerKey:    key,
//	    ConsumerSecret: secret,
//	})
//	token, err := client.FetchRequestToken(ctx, "http://my-app.com/access_granted")
//	url, err := client.AuthorizationURL()
//
// Redirect the user to url. After granting access they land on your
// access_granted page with oauth_token and oauth_verifier query parameters:
//
//	client.SetRequestToken(&viking.Token{Key: requestKey, Secret: requestSecret})
//	if err := client.SetRequestVerifier(verifier); err != nil { ... }
//	access, err := client.FetchAccessToken(ctx)
//
// Pass viking.CallbackOutOfBand (or an empty callback) to have the Mobile
// Vikings site display the verification code instead of redirecting.
//
// # Making calls
//
//	resp, err := client.Get(ctx, "top_up_history")
//
// # Re-using an access token
//
// An access token stays valid until the user revokes it, so store it and
// skip the authorization dance on later runs:
//
//	client.SetAccessToken(saved)
//	resp, err := client.Get(ctx, "sim_balance")
//
// A Client holds mutable authentication state and is not safe for
// concurrent use without external synchronization.
package viking
