// Package placehub is the Go client SDK for the PlaceHub API. It implements
// the client-side session and request-authorization core: holding the
// current authentication state, attaching bearer credentials to outgoing
// requests, and transparently recovering from credential expiry with a
// single refresh-and-retry cycle.
//
// The Client wires the core components together: a durable token store, the
// observable session state, the auth gateway that performs login/register/
// refresh, and the authorizing http.RoundTripper used for every protected
// call.
//
// Typical usage:
//
//	client, err := placehub.New(gateway.Config{BaseURL: "https://api.placehub.app/api/v1"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Restore a previous session from the token store, if any.
//	client.Bootstrap(ctx)
//
//	if err := client.Login(ctx, "ada@example.com", "secret"); err != nil {
//		log.Fatal(err)
//	}
//
//	// All protected API calls go through the authorized HTTP client;
//	// 401 handling, refresh, and the single retry are transparent.
//	resp, err := client.HTTPClient().Get(apiURL + "/profile/me")
//
// Authentication state is observable: SubscribeAuth delivers the current
// value immediately and then every transition, which is what navigation
// guards build on. The synchronous predicate IsAuthenticated serves the same
// purpose for one-shot checks.
//
// Configuration can come from the environment (including a .env file) via
// NewFromEnv; see core/config.
package placehub
